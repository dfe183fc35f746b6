package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storedash/internal/client/api"
	"github.com/dmitrijs2005/storedash/internal/client/config"
	"github.com/dmitrijs2005/storedash/internal/client/forms"
	"github.com/dmitrijs2005/storedash/internal/client/session"
	"github.com/dmitrijs2005/storedash/internal/logging"
)

// fakeAPI implements api.Client for App-level tests.
type fakeAPI struct {
	loginRes  *api.AuthResult
	loginErr  error
	lastLogin api.LoginRequest

	registerRes  *api.AuthResult
	registerErr  error
	lastRegister api.RegisterRequest

	logoutCalls int

	refreshRes *api.TokenPair
	refreshErr error

	loginCalls    int
	registerCalls int
}

func (f *fakeAPI) Login(_ context.Context, req api.LoginRequest) (*api.AuthResult, error) {
	f.loginCalls++
	f.lastLogin = req
	return f.loginRes, f.loginErr
}

func (f *fakeAPI) Register(_ context.Context, req api.RegisterRequest) (*api.AuthResult, error) {
	f.registerCalls++
	f.lastRegister = req
	return f.registerRes, f.registerErr
}

func (f *fakeAPI) Logout(context.Context, string) error {
	f.logoutCalls++
	return nil
}

func (f *fakeAPI) Refresh(context.Context, string) (*api.TokenPair, error) {
	return f.refreshRes, f.refreshErr
}

func okAuthResult() *api.AuthResult {
	return &api.AuthResult{
		User: api.User{ID: "u1", FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
		TokenPair: api.TokenPair{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			ExpiresIn:    3600,
		},
	}
}

func newTestApp(f *fakeAPI) *App {
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	return &App{
		config: &config.Config{LoginPath: "/auth/login"},
		store:  session.NewStore(f, nil, log),
		log:    log,
		reader: bufio.NewReader(strings.NewReader("")),
	}
}

// stubInputs replaces the interactive seams with canned answers.
// texts feeds GetSimpleText calls in order; passwords feeds GetPassword calls.
func stubInputs(t *testing.T, texts []string, passwords [][]byte, yes bool) {
	t.Helper()
	origST, origGP, origYN := getSimpleText, getPassword, getYesNo
	ti, pi := 0, 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		v := texts[ti]
		ti++
		return v, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		v := passwords[pi]
		pi++
		return append([]byte(nil), v...), nil
	}
	getYesNo = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) {
		return yes, nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
		getYesNo = origYN
	})
}

// capturePrintln collects user-facing output lines.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestLogin_Success(t *testing.T) {
	f := &fakeAPI{loginRes: okAuthResult()}
	a := newTestApp(f)

	stubInputs(t, []string{"jane@example.com"}, [][]byte{[]byte("Secret1!pass")}, true)
	out := capturePrintln(t)

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, 1, f.loginCalls)
	assert.True(t, f.lastLogin.Remember)
	assert.True(t, a.store.Snapshot().IsAuthenticated)
	require.NotEmpty(t, *out)
	assert.Contains(t, (*out)[len(*out)-1], "Welcome back!")
}

func TestLogin_ValidationBlocksDispatch(t *testing.T) {
	f := &fakeAPI{loginRes: okAuthResult()}
	a := newTestApp(f)

	stubInputs(t, []string{"not-an-email"}, [][]byte{[]byte("short")}, false)
	out := capturePrintln(t)

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, 0, f.loginCalls)
	assert.False(t, a.store.Snapshot().IsAuthenticated)

	joined := fmt.Sprint(*out)
	assert.Contains(t, joined, forms.MsgLoginEmailInvalid)
	assert.Contains(t, joined, forms.MsgLoginPasswordInvalid)
}

func TestLogin_ServerMessageShownVerbatim(t *testing.T) {
	f := &fakeAPI{loginErr: &api.APIError{Status: 401, Message: "Invalid credentials"}}
	a := newTestApp(f)

	stubInputs(t, []string{"jane@example.com"}, [][]byte{[]byte("Secret1!pass")}, false)
	out := capturePrintln(t)

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, 1, f.loginCalls)
	assert.Contains(t, fmt.Sprint(*out), "Invalid credentials")
	assert.False(t, a.store.Snapshot().IsAuthenticated)
}

func TestRegister_Success(t *testing.T) {
	f := &fakeAPI{registerRes: okAuthResult()}
	a := newTestApp(f)

	stubInputs(t,
		[]string{"Jane", "Doe", "jane@example.com"},
		[][]byte{[]byte("Aa1!aaaa"), []byte("Aa1!aaaa")},
		true)
	out := capturePrintln(t)

	require.NoError(t, a.Register(context.Background()))

	assert.Equal(t, 1, f.registerCalls)
	assert.Equal(t, "Jane", f.lastRegister.FirstName)
	assert.Equal(t, "jane@example.com", f.lastRegister.Email)
	assert.True(t, a.store.Snapshot().IsAuthenticated)
	assert.Contains(t, fmt.Sprint(*out), "Account created")
}

func TestRegister_TermsDeclinedBlocksDispatch(t *testing.T) {
	f := &fakeAPI{registerRes: okAuthResult()}
	a := newTestApp(f)

	stubInputs(t,
		[]string{"Jane", "Doe", "jane@example.com"},
		[][]byte{[]byte("Aa1!aaaa"), []byte("Aa1!aaaa")},
		false)
	out := capturePrintln(t)

	require.NoError(t, a.Register(context.Background()))

	assert.Equal(t, 0, f.registerCalls)
	assert.Contains(t, fmt.Sprint(*out), forms.MsgTermsRequired)
}

func TestLogout_ClearsSessionAndReports(t *testing.T) {
	f := &fakeAPI{loginRes: okAuthResult()}
	a := newTestApp(f)

	stubInputs(t, []string{"jane@example.com"}, [][]byte{[]byte("Secret1!pass")}, false)
	capturePrintln(t)
	require.NoError(t, a.Login(context.Background()))

	out := capturePrintln(t)
	require.NoError(t, a.Logout(context.Background()))

	assert.Equal(t, 1, f.logoutCalls)
	assert.False(t, a.store.Snapshot().IsAuthenticated)
	assert.Contains(t, fmt.Sprint(*out), "Signed out.")
}

func TestRefresh_NoTokenDropsSession(t *testing.T) {
	f := &fakeAPI{}
	a := newTestApp(f)

	out := capturePrintln(t)
	require.NoError(t, a.Refresh(context.Background()))

	assert.Contains(t, fmt.Sprint(*out), "No refresh token available")
	assert.False(t, a.store.Snapshot().IsAuthenticated)
}
