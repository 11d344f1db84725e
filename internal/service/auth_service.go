package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"movie_vault/model"
	"movie_vault/util"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const defaultGithubApiUrl = "https://api.github.com"

type IAuthService interface {
	GetLoginUrl(redirectTo string) (string, string, error)
	HandleGithubCallback(ctx context.Context, code string, state string, stateId string) (*model.User, string, error)
}

type AuthConfig struct {
	ClientId     string
	ClientSecret string
	RedirectUrl  string
	StateSecret  string
	StateTtl     time.Duration
	// Endpoint and ApiUrl default to github.com, tests point them at a fake server.
	Endpoint   *oauth2.Endpoint
	ApiUrl     string
	HttpClient *http.Client
}

type AuthService struct {
	oauthConfig *oauth2.Config
	apiUrl      string
	stateSecret string
	stateTtl    time.Duration
	httpClient  *http.Client
	userService IUserService
}

func NewAuthService(config AuthConfig, userService IUserService) *AuthService {
	endpoint := github.Endpoint
	if config.Endpoint != nil {
		endpoint = *config.Endpoint
	}
	apiUrl := strings.TrimSuffix(config.ApiUrl, "/")
	if apiUrl == "" {
		apiUrl = defaultGithubApiUrl
	}
	stateTtl := config.StateTtl
	if stateTtl <= 0 {
		stateTtl = 10 * time.Minute
	}
	httpClient := config.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &AuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     config.ClientId,
			ClientSecret: config.ClientSecret,
			Endpoint:     endpoint,
			RedirectURL:  config.RedirectUrl,
			Scopes:       []string{"read:user", "user:email"},
		},
		apiUrl:      apiUrl,
		stateSecret: config.StateSecret,
		stateTtl:    stateTtl,
		httpClient:  httpClient,
		userService: userService,
	}
}

//------------------------------------------
//------------------------------------------

type githubUserRes struct {
	Id        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarUrl string `json:"avatar_url"`
}

type githubEmailRes struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

//------------------------------------------
//------------------------------------------

// GetLoginUrl returns the provider authorize url with a signed, short lived state,
// and the state id the caller must keep for the callback.
func (s *AuthService) GetLoginUrl(redirectTo string) (string, string, error) {
	state, stateId, err := util.SignStateToken(s.stateSecret, s.stateTtl, redirectTo)
	if err != nil {
		return "", "", err
	}
	return s.oauthConfig.AuthCodeURL(state), stateId, nil
}

// HandleGithubCallback verifies state against the id issued to this browser, exchanges
// code and logs the github account in. The second result is the redirect target
// carried in the state.
func (s *AuthService) HandleGithubCallback(ctx context.Context, code string, state string, stateId string) (*model.User, string, error) {
	claims, err := util.VerifyStateToken(s.stateSecret, state)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", model.ErrInvalidState, err)
	}
	if stateId == "" || claims.ID != stateId {
		return nil, "", fmt.Errorf("%w: state was not issued to this session", model.ErrInvalidState)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, "", fmt.Errorf("%w: github rejected the code: %s", model.ErrUnauthorized, retrieveErr.ErrorCode)
		}
		return nil, "", fmt.Errorf("github code exchange: %w", err)
	}

	profile, err := s.fetchProfile(ctx, token)
	if err != nil {
		return nil, "", err
	}

	user, err := s.userService.LoginWithGithub(ctx, *profile)
	if err != nil {
		return nil, "", err
	}
	return user, claims.RedirectTo, nil
}

func (s *AuthService) fetchProfile(ctx context.Context, token *oauth2.Token) (*model.GithubProfile, error) {
	client := s.oauthConfig.Client(ctx, token)

	var user githubUserRes
	if err := s.getJson(client, "/user", &user); err != nil {
		return nil, fmt.Errorf("failed to fetch github user: %w", err)
	}

	email := user.Email
	if email == "" {
		var emails []githubEmailRes
		// a failure here only means no email
		if err := s.getJson(client, "/user/emails", &emails); err == nil {
			email = primaryEmail(emails)
		}
	}

	return &model.GithubProfile{
		Id:        strconv.FormatInt(user.Id, 10),
		Login:     user.Login,
		Name:      user.Name,
		Email:     strings.ToLower(email),
		AvatarUrl: user.AvatarUrl,
	}, nil
}

func (s *AuthService) getJson(client *http.Client, path string, target interface{}) error {
	resp, err := client.Get(s.apiUrl + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github api returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}

// primaryEmail prefers the primary verified address, then any verified one.
func primaryEmail(emails []githubEmailRes) string {
	fallback := ""
	for _, e := range emails {
		if !e.Verified {
			continue
		}
		if e.Primary {
			return e.Email
		}
		if fallback == "" {
			fallback = e.Email
		}
	}
	return fallback
}
