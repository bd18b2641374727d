package domain_test

import (
	"testing"

	"github.com/flashforge/flashforge-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerationRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     domain.GenerationRequest
		wantErr error
	}{
		{
			name:    "valid request",
			req:     domain.GenerationRequest{Subject: "Biology", Topic: "Pollination", CardCount: 5},
			wantErr: nil,
		},
		{
			name:    "missing subject",
			req:     domain.GenerationRequest{Subject: "", Topic: "Pollination", CardCount: 5},
			wantErr: domain.ErrSubjectEmpty,
		},
		{
			name:    "whitespace-only subject",
			req:     domain.GenerationRequest{Subject: "   ", Topic: "Pollination", CardCount: 5},
			wantErr: domain.ErrSubjectEmpty,
		},
		{
			name:    "missing topic",
			req:     domain.GenerationRequest{Subject: "Biology", Topic: "  ", CardCount: 5},
			wantErr: domain.ErrTopicEmpty,
		},
		{
			name:    "card count below minimum",
			req:     domain.GenerationRequest{Subject: "Biology", Topic: "Pollination", CardCount: 0},
			wantErr: domain.ErrCardCountRange,
		},
		{
			name:    "card count above maximum",
			req:     domain.GenerationRequest{Subject: "Biology", Topic: "Pollination", CardCount: 16},
			wantErr: domain.ErrCardCountRange,
		},
		{
			name:    "card count at bounds",
			req:     domain.GenerationRequest{Subject: "Biology", Topic: "Pollination", CardCount: 15},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
