package payment_test

import (
	"encoding/json"
	"testing"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/payment"
	paymenterrors "github.com/rifatalam240/Employee-Management-System-Server/internal/payment/errors"

	"github.com/stretchr/testify/assert"
)

func TestMonthValue_Unmarshal(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    payment.MonthValue
		wantErr bool
	}{
		{name: "numeric", input: `3`, want: 3},
		{name: "full name", input: `"March"`, want: 3},
		{name: "lowercase name", input: `"december"`, want: 12},
		{name: "abbreviated name", input: `"Sep"`, want: 9},
		{name: "numeric string", input: `"7"`, want: 7},
		{name: "unknown name", input: `"Marchtober"`, wantErr: true},
		{name: "wrong type", input: `true`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var m payment.MonthValue
			err := json.Unmarshal([]byte(tc.input), &m)
			if tc.wantErr {
				assert.ErrorIs(t, err, paymenterrors.ErrInvalidMonth)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, m)
		})
	}
}

func TestMonthValue_Valid(t *testing.T) {
	assert.True(t, payment.MonthValue(1).Valid())
	assert.True(t, payment.MonthValue(12).Valid())
	assert.False(t, payment.MonthValue(0).Valid())
	assert.False(t, payment.MonthValue(13).Valid())
}
