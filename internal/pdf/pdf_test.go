package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMarkdownToPDF(t *testing.T) {
	tests := []struct {
		name            string
		fileName        string
		content         string
		createFile      bool
		wantErrContains string
	}{
		{
			name:       "converts a markdown export",
			fileName:   "flashcards.md",
			content:    "# Flashcards\n\n## Personal (1)\n\n- le chat: el gato\n",
			createFile: true,
		},
		{
			name:            "rejects other extensions",
			fileName:        "flashcards.txt",
			content:         "# Flashcards\n",
			createFile:      true,
			wantErrContains: "input file must have .md extension",
		},
		{
			name:            "missing file",
			fileName:        "missing.md",
			wantErrContains: "os.ReadFile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markdownPath := filepath.Join(t.TempDir(), tt.fileName)
			if tt.createFile {
				require.NoError(t, os.WriteFile(markdownPath, []byte(tt.content), 0644))
			}

			got, err := ConvertMarkdownToPDF(markdownPath)
			if tt.wantErrContains != "" {
				assert.ErrorContains(t, err, tt.wantErrContains)
				return
			}
			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(got))
			assert.Equal(t, ".pdf", filepath.Ext(got))

			info, err := os.Stat(got)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}
