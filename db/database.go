package db

import (
	"context"

	"gorm.io/gorm"
)

type Database interface {
	GetDB() *gorm.DB
	// WithContext returns a session bound to ctx, scoped to one request.
	WithContext(ctx context.Context) *gorm.DB
}

type GormDatabase struct {
	DB *gorm.DB
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }

func (g *GormDatabase) WithContext(ctx context.Context) *gorm.DB { return g.DB.WithContext(ctx) }
