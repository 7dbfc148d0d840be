package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.bittr.nu/spoolsync/internal/core/domain"
)

func TestSubjectKeys(t *testing.T) {
	f := &domain.Filament{ID: 7}
	s := &domain.Spool{ID: 10, Filament: f}

	tests := []struct {
		name         string
		subject      domain.Subject
		mode         domain.Mode
		wantFilename string
		wantContent  string
	}{
		{
			name:         "default mode keys off the filament",
			subject:      domain.Subject{Filament: f, Suffix: "ini"},
			mode:         domain.ModeDefault,
			wantFilename: "7-ini",
			wantContent:  "7",
		},
		{
			name:         "all mode keys off the spool",
			subject:      domain.Subject{Filament: f, Spool: s, Suffix: "ini"},
			mode:         domain.ModeAll,
			wantFilename: "spool-10-ini",
			wantContent:  "spool-10",
		},
		{
			name:         "all mode without a spool id falls back to the filament",
			subject:      domain.Subject{Filament: f, Spool: &domain.Spool{Filament: f}, Suffix: "ini"},
			mode:         domain.ModeAll,
			wantFilename: "7-ini",
			wantContent:  "7",
		},
		{
			name:         "selected-spool modes key off the filament",
			subject:      domain.Subject{Filament: f, Spool: s, Suffix: "json"},
			mode:         domain.ModeLeastLeft,
			wantFilename: "7-json",
			wantContent:  "7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFilename, tt.subject.FilenameKey(tt.mode))
			assert.Equal(t, tt.wantContent, tt.subject.ContentKey(tt.mode))
		})
	}
}
