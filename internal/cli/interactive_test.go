package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	mock_cli "github.com/at-ishikawa/polypal/internal/mocks/cli"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestInteractiveCLI_Run(t *testing.T) {
	sessionErr := errors.New("broken pipe")

	tests := []struct {
		name         string
		setupSession func(session *mock_cli.MockSession)
		wantErr      error
	}{
		{
			name: "runs sessions until the end",
			setupSession: func(session *mock_cli.MockSession) {
				gomock.InOrder(
					session.EXPECT().Session(gomock.Any()).Return(nil).Times(2),
					session.EXPECT().Session(gomock.Any()).Return(errEnd),
				)
			},
		},
		{
			name: "stops at the first error",
			setupSession: func(session *mock_cli.MockSession) {
				gomock.InOrder(
					session.EXPECT().Session(gomock.Any()).Return(nil),
					session.EXPECT().Session(gomock.Any()).Return(sessionErr),
				)
			},
			wantErr: sessionErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			session := mock_cli.NewMockSession(ctrl)
			tt.setupSession(session)

			cli := newInteractiveCLI(WithIO(strings.NewReader(""), &bytes.Buffer{}))
			err := cli.Run(context.Background(), session)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInteractiveCLI_Run_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock_cli.NewMockSession(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	session.EXPECT().Session(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		cancel()
		<-ctx.Done()
		return nil
	})

	var stdout bytes.Buffer
	cli := newInteractiveCLI(WithIO(strings.NewReader(""), &stdout))
	assert.NoError(t, cli.Run(ctx, session))
}

func TestInteractiveCLI_readLine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantEnd bool
	}{
		{
			name:    "lines are trimmed",
			input:   "  bonjour \nmerci\n",
			want:    []string{"bonjour", "merci"},
			wantEnd: true,
		},
		{
			name:    "last line without newline",
			input:   "au revoir",
			want:    []string{"au revoir"},
			wantEnd: true,
		},
		{
			name:    "empty input ends immediately",
			input:   "",
			wantEnd: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := newInteractiveCLI(WithIO(strings.NewReader(tt.input), &bytes.Buffer{}))
			var got []string
			for {
				line, err := cli.readLine()
				if errors.Is(err, errEnd) {
					break
				}
				require.NoError(t, err)
				got = append(got, line)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
