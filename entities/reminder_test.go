package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldSendEmail(t *testing.T) {
	cases := []struct {
		name      string
		sendEmail bool
		email     *Email
		want      bool
	}{
		{"flag and address", true, &Email{Address: "a@b.com"}, true},
		{"flag without address", true, &Email{Address: ""}, false},
		{"flag without email row", true, nil, false},
		{"address without flag", false, &Email{Address: "a@b.com"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Reminder{SendEmail: tc.sendEmail, Email: tc.email}
			assert.Equal(t, tc.want, r.ShouldSendEmail())
		})
	}
}

func TestBeforeSaveRecomputesNormalizedName(t *testing.T) {
	r := &Reminder{Name: "Ir ao Médico", NameNormalized: "stale"}
	assert.NoError(t, r.BeforeSave(nil))
	assert.Equal(t, "ir ao medico", r.NameNormalized)
}
