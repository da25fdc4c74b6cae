package validators_test

import (
	"strings"
	"testing"

	"github.com/smulube/stashboard/internal/controller/http/validators"
	"github.com/stretchr/testify/assert"
)

func TestValidateStatus(t *testing.T) {
	testCases := []struct {
		name    string
		req     validators.StatusRequest
		wantErr error
	}{
		{
			name: "valid",
			req:  validators.StatusRequest{Name: " Maintenance ", Image: "wrench", Level: "WARNING"},
		},
		{
			name:    "missing name",
			req:     validators.StatusRequest{Image: "wrench", Level: "WARNING"},
			wantErr: validators.ErrEmptyName,
		},
		{
			name:    "name too long",
			req:     validators.StatusRequest{Name: strings.Repeat("a", 101), Image: "wrench", Level: "WARNING"},
			wantErr: validators.ErrLongName,
		},
		{
			name:    "lowercase level",
			req:     validators.StatusRequest{Name: "Maintenance", Image: "wrench", Level: "warning"},
			wantErr: validators.ErrInvalidLevel,
		},
		{
			name:    "unknown image",
			req:     validators.StatusRequest{Name: "Maintenance", Image: "rocket", Level: "WARNING"},
			wantErr: validators.ErrInvalidImage,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validators.ValidateStatus(&tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "Maintenance", tc.req.Name)
		})
	}
}

func TestValidateStatusUpdate(t *testing.T) {
	assert.ErrorIs(t, validators.ValidateStatusUpdate(&validators.StatusRequest{}), validators.ErrNothingToDo)
	assert.ErrorIs(t, validators.ValidateStatusUpdate(&validators.StatusRequest{Level: "FATAL"}), validators.ErrInvalidLevel)
	assert.NoError(t, validators.ValidateStatusUpdate(&validators.StatusRequest{Description: "new text"}))
}

func TestValidateService(t *testing.T) {
	assert.ErrorIs(t, validators.ValidateService(&validators.ServiceRequest{Name: "   "}), validators.ErrEmptyName)
	assert.NoError(t, validators.ValidateService(&validators.ServiceRequest{Name: "API"}))
	assert.ErrorIs(t, validators.ValidateServiceUpdate(&validators.ServiceRequest{}), validators.ErrNothingToDo)
	assert.NoError(t, validators.ValidateServiceUpdate(&validators.ServiceRequest{Description: "text"}))
}

func TestValidateEvent(t *testing.T) {
	testCases := []struct {
		name    string
		req     validators.EventRequest
		wantErr error
	}{
		{name: "valid", req: validators.EventRequest{Status: "down", Message: "db outage"}},
		{name: "no status", req: validators.EventRequest{Message: "db outage"}, wantErr: validators.ErrEmptyStatus},
		{name: "blank message", req: validators.EventRequest{Status: "down", Message: " "}, wantErr: validators.ErrEmptyMessage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validators.ValidateEvent(&tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
