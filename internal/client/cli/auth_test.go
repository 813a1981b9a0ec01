package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsedash/pulsedash/internal/client/api"
	"github.com/pulsedash/pulsedash/internal/client/session"
)

// stubInputs replaces the interactive input helpers. Text prompts are
// answered from texts in order; the password prompt returns password.
func stubInputs(t *testing.T, texts []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", errors.New("unexpected prompt")
		}
		s := texts[i]
		i++
		return s, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeAPI struct {
	signUpName  string
	signUpEmail string
	signUpPass  string
	signUpOut   *api.User
	signUpErr   error

	loginEmail string
	loginPass  string
	loginOut   *api.User
	loginErr   error

	dashboardOut json.RawMessage
	dashboardErr error
}

func (f *fakeAPI) SignUp(_ context.Context, name, email, password string) (*api.User, error) {
	f.signUpName, f.signUpEmail, f.signUpPass = name, email, password
	return f.signUpOut, f.signUpErr
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*api.User, error) {
	f.loginEmail, f.loginPass = email, password
	return f.loginOut, f.loginErr
}

func (f *fakeAPI) Dashboard(context.Context) (json.RawMessage, error) {
	return f.dashboardOut, f.dashboardErr
}

func (f *fakeAPI) Ping(context.Context) error { return nil }

func newTestApp(t *testing.T, client apiClient) *App {
	t.Helper()
	holder := session.NewHolder(t.TempDir())
	require.NoError(t, holder.Load())
	return &App{client: client, session: holder}
}

func TestSignUp_SendsEnteredValues(t *testing.T) {
	f := &fakeAPI{signUpOut: &api.User{ID: "1", Name: "Ann", Email: "ann@x.com"}}
	a := newTestApp(t, f)

	restore := stubInputs(t, []string{"Ann", "ann@x.com"}, []byte("secret1"))
	defer restore()

	require.NoError(t, a.SignUp(context.Background()))

	assert.Equal(t, "Ann", f.signUpName)
	assert.Equal(t, "ann@x.com", f.signUpEmail)
	assert.Equal(t, "secret1", f.signUpPass)

	// Signing up alone must not create a session.
	assert.False(t, a.isLoggedIn())
}

func TestSignUp_ServiceError(t *testing.T) {
	f := &fakeAPI{signUpErr: &api.APIError{StatusCode: 400, Message: "Email is already registered"}}
	a := newTestApp(t, f)

	restore := stubInputs(t, []string{"Ann", "ann@x.com"}, []byte("secret1"))
	defer restore()

	err := a.SignUp(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Email is already registered", err.Error())
}

func TestLogin_StoresSession(t *testing.T) {
	user := &api.User{ID: "1", Name: "Ann", Email: "ann@x.com"}
	f := &fakeAPI{loginOut: user}
	a := newTestApp(t, f)

	restore := stubInputs(t, []string{"ann@x.com"}, []byte("secret1"))
	defer restore()

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, "ann@x.com", f.loginEmail)
	assert.Equal(t, "secret1", f.loginPass)
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, user, a.session.Current())
}

func TestLogin_InvalidCredentialsLeaveNoSession(t *testing.T) {
	f := &fakeAPI{loginErr: &api.APIError{StatusCode: 400, Message: "Invalid email or password"}}
	a := newTestApp(t, f)

	restore := stubInputs(t, []string{"ann@x.com"}, []byte("wrong"))
	defer restore()

	require.Error(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
}

func TestLogout_ClearsSession(t *testing.T) {
	user := &api.User{ID: "1", Name: "Ann", Email: "ann@x.com"}
	a := newTestApp(t, &fakeAPI{loginOut: user})

	restore := stubInputs(t, []string{"ann@x.com"}, []byte("secret1"))
	defer restore()

	require.NoError(t, a.Login(context.Background()))
	require.NoError(t, a.Logout(context.Background()))

	assert.False(t, a.isLoggedIn())
	assert.Nil(t, a.session.Current())
}

func TestDashboard_WorksLoggedOut(t *testing.T) {
	// The API does not guard /dashboard, so the command works either way.
	f := &fakeAPI{dashboardOut: json.RawMessage(`{"userStats":{"totalUsers":1}}`)}
	a := newTestApp(t, f)

	require.NoError(t, a.Dashboard(context.Background()))
}

func TestDashboard_MalformedPayload(t *testing.T) {
	f := &fakeAPI{dashboardOut: json.RawMessage(`[1,2,3]`)}
	a := newTestApp(t, f)

	require.Error(t, a.Dashboard(context.Background()))
}
