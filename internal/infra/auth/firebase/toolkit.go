package firebase

import (
	"context"
	"net/url"

	"portfolio/config"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

const requestTypePasswordReset = "PASSWORD_RESET"

// account is the identity backend's view of a signed-in user together with its tokens.
type account struct {
	LocalID      string
	Email        string
	DisplayName  string
	PhotoURL     string
	IDToken      string
	RefreshToken string
}

// accountUpdate lists the profile fields to change. Empty fields are left untouched.
type accountUpdate struct {
	DisplayName string
	Password    string
}

// identityAPI is the subset of the Identity Toolkit relying party API the adapter uses.
type identityAPI interface {
	signInWithPassword(ctx context.Context, email, password string) (*account, error)
	signInWithIDP(ctx context.Context, providerID, idToken string) (*account, error)
	signUp(ctx context.Context, email, password, displayName string) (*account, error)
	sendPasswordReset(ctx context.Context, email string) error
	updateAccount(ctx context.Context, idToken string, update accountUpdate) (*account, error)
	refreshIDToken(ctx context.Context, refreshToken string) (*account, error)
}

// toolkitClient calls the Identity Toolkit REST API with the project's web API key.
type toolkitClient struct {
	relyingparty *identitytoolkit.RelyingpartyService
	requestURI   string
	// secureToken exchanges refresh tokens; the Secure Token API speaks the OAuth2 refresh grant.
	secureToken *oauth2.Config
}

func newToolkitClient(ctx context.Context, cfg *config.FirebaseConfig) (*toolkitClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("firebase api key is required")
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.AuthEndpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.AuthEndpoint))
	}

	svc, err := identitytoolkit.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit service")
	}

	tokenURL := cfg.TokenEndpoint + "?" + url.Values{"key": {cfg.APIKey}}.Encode()

	return &toolkitClient{
		relyingparty: svc.Relyingparty,
		requestURI:   cfg.RequestURI,
		secureToken: &oauth2.Config{
			Endpoint: oauth2.Endpoint{TokenURL: tokenURL, AuthStyle: oauth2.AuthStyleInParams},
		},
	}, nil
}

func (c *toolkitClient) signInWithPassword(ctx context.Context, email, password string) (*account, error) {
	resp, err := c.relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return &account{
		LocalID:      resp.LocalId,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		PhotoURL:     resp.PhotoUrl,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

func (c *toolkitClient) signInWithIDP(ctx context.Context, providerID, idToken string) (*account, error) {
	postBody := url.Values{}
	postBody.Set("id_token", idToken)
	postBody.Set("providerId", providerID)

	resp, err := c.relyingparty.VerifyAssertion(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:          postBody.Encode(),
		RequestUri:        c.requestURI,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if resp.ErrorMessage != "" {
		return nil, errors.New(resp.ErrorMessage)
	}

	return &account{
		LocalID:      resp.LocalId,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		PhotoURL:     resp.PhotoUrl,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

func (c *toolkitClient) signUp(ctx context.Context, email, password, displayName string) (*account, error) {
	resp, err := c.relyingparty.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return &account{
		LocalID:      resp.LocalId,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

func (c *toolkitClient) sendPasswordReset(ctx context.Context, email string) error {
	_, err := c.relyingparty.GetOobConfirmationCode(&identitytoolkit.Relyingparty{
		Email:       email,
		RequestType: requestTypePasswordReset,
	}).Context(ctx).Do()

	return err
}

func (c *toolkitClient) updateAccount(ctx context.Context, idToken string, update accountUpdate) (*account, error) {
	resp, err := c.relyingparty.SetAccountInfo(&identitytoolkit.IdentitytoolkitRelyingpartySetAccountInfoRequest{
		IdToken:           idToken,
		DisplayName:       update.DisplayName,
		Password:          update.Password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return &account{
		LocalID:      resp.LocalId,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		PhotoURL:     resp.PhotoUrl,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

func (c *toolkitClient) refreshIDToken(ctx context.Context, refreshToken string) (*account, error) {
	token, err := c.secureToken.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return nil, errors.Wrap(err, "refresh id token")
	}

	idToken, _ := token.Extra("id_token").(string)
	if idToken == "" {
		idToken = token.AccessToken
	}
	userID, _ := token.Extra("user_id").(string)

	return &account{
		LocalID:      userID,
		IDToken:      idToken,
		RefreshToken: token.RefreshToken,
	}, nil
}
