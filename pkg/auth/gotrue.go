package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// GoTrueClient talks to the Supabase auth API (GoTrue). Authentication is
// fully delegated: this client signs users up and in, ends sessions, and
// resolves the current session's user. Token verification stays in the
// middleware via the JWT secret / JWKS, not here.
type GoTrueClient struct {
	baseURL    string // https://<project>.supabase.co
	apiKey     string // anon key, sent as apikey header
	httpClient *http.Client
}

func NewGoTrueClient(supabaseURL, apiKey string) *GoTrueClient {
	return &GoTrueClient{
		baseURL: supabaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// AuthUser is the subset of the GoTrue user object we care about.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is an issued token pair. AccessToken can be empty after sign-up
// when the project requires email confirmation first.
type Session struct {
	AccessToken  string   `json:"access_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
	RefreshToken string   `json:"refresh_token"`
	User         AuthUser `json:"user"`
}

// gotrueError covers both error shapes the API returns.
type gotrueError struct {
	Msg              string `json:"msg"`
	ErrorCode        string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e *gotrueError) message() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.ErrorDescription != "" {
		return e.ErrorDescription
	}
	return e.ErrorCode
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers a new user with email and password. Projects that require
// email confirmation return a bare user object instead of a token response,
// so both shapes are decoded from the same body.
func (c *GoTrueClient) SignUp(ctx context.Context, email, password string) (*Session, error) {
	var resp struct {
		Session
		AuthUser
	}
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", "", credentials{email, password}, &resp); err != nil {
		return nil, err
	}
	session := resp.Session
	if session.User.ID == "" {
		session.User = resp.AuthUser
	}
	return &session, nil
}

// SignIn exchanges email and password for a session.
func (c *GoTrueClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", credentials{email, password}, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// SignOut revokes the session behind the access token.
func (c *GoTrueClient) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/logout", accessToken, nil, nil)
}

// CurrentUser resolves the user for an access token.
func (c *GoTrueClient) CurrentUser(ctx context.Context, accessToken string) (*AuthUser, error) {
	var user AuthUser
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *GoTrueClient) do(ctx context.Context, method, path, accessToken string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr gotrueError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if msg := apiErr.message(); msg != "" {
			return fmt.Errorf("auth: %s", msg)
		}
		return fmt.Errorf("auth: unexpected status %d", resp.StatusCode)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
