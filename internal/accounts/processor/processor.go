package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"social-manager/internal/observability"
	"social-manager/internal/store"
)

// AccountStore defines the database operations required by AccountProcessor
type AccountStore interface {
	CreateSocialAccount(ctx context.Context, params store.CreateSocialAccountParams) (store.SocialAccount, error)
	ListSocialAccounts(ctx context.Context) ([]store.SocialAccount, error)
	CreateBusinessAccount(ctx context.Context, params store.CreateBusinessAccountParams) (store.BusinessAccount, error)
	GetBusinessAccountByID(ctx context.Context, businessID int64) (store.BusinessAccount, error)
	ListBusinessAccounts(ctx context.Context) ([]store.BusinessAccount, error)
	CreateBusinessCredential(ctx context.Context, params store.CreateBusinessCredentialParams) (store.BusinessCredential, error)
	ListBusinessCredentials(ctx context.Context, businessID int64) ([]store.BusinessCredential, error)
	CreateSocialAPICredential(ctx context.Context, params store.CreateSocialAPICredentialParams) (store.SocialAPICredential, error)
	ListSocialAPICredentials(ctx context.Context) ([]store.SocialAPICredential, error)
}

// Sealer encrypts secrets before they are stored.
type Sealer interface {
	Seal(plaintext string) (string, error)
}

var (
	ErrValidation          = errors.New("invalid account request")
	ErrUnsupportedPlatform = fmt.Errorf("%w: platform is not supported", ErrValidation)
	ErrNameRequired        = fmt.Errorf("%w: name is required", ErrValidation)
	ErrHandleRequired      = fmt.Errorf("%w: handle is required", ErrValidation)
	ErrInvalidSlug         = fmt.Errorf("%w: slug must contain only lowercase letters, digits and dashes", ErrValidation)
	ErrLabelRequired       = fmt.Errorf("%w: label is required", ErrValidation)
	ErrAppNameRequired     = fmt.Errorf("%w: app_name is required", ErrValidation)
	ErrAlreadyExists       = errors.New("account already exists")
	ErrBusinessNotFound    = errors.New("business not found")
	ErrFailedSealSecret    = errors.New("failed to seal secret")
	ErrFailedSaveAccount   = errors.New("failed to save account")
	ErrFailedListAccounts  = errors.New("failed to list accounts")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type AccountProcessor struct {
	store  AccountStore
	sealer Sealer
	logger *observability.Logger
}

func New(accountStore AccountStore, sealer Sealer, logger *observability.Logger) AccountProcessor {
	return AccountProcessor{
		store:  accountStore,
		sealer: sealer,
		logger: logger,
	}
}

type CreateSocialAccountParams struct {
	Name        string
	Platform    string
	Handle      string
	AccessToken string
	IsActive    bool
}

type CreateBusinessAccountParams struct {
	Name         string
	Slug         string
	ContactEmail string
	Description  string
}

type CreateBusinessCredentialParams struct {
	BusinessID int64
	Label      string
	Username   string
	Secret     string
	Metadata   map[string]any
}

type CreateSocialAPICredentialParams struct {
	Platform     string
	AppName      string
	ClientID     string
	ClientSecret string
	AccessToken  string
	RefreshToken string
	APIBaseURL   string
	Metadata     map[string]any
}

func (p *AccountProcessor) CreateSocialAccount(ctx context.Context, params CreateSocialAccountParams) (store.SocialAccount, error) {
	name := strings.TrimSpace(params.Name)
	handle := strings.TrimPrefix(strings.TrimSpace(params.Handle), "@")
	platform := strings.ToLower(strings.TrimSpace(params.Platform))

	switch {
	case name == "":
		return store.SocialAccount{}, ErrNameRequired
	case handle == "":
		return store.SocialAccount{}, ErrHandleRequired
	case !store.IsValidPlatform(platform):
		return store.SocialAccount{}, ErrUnsupportedPlatform
	}

	token, err := p.seal(ctx, params.AccessToken)
	if err != nil {
		return store.SocialAccount{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "platform", Value: platform},
		observability.Field{Key: "handle", Value: handle},
	)

	account, err := p.store.CreateSocialAccount(ctx, store.CreateSocialAccountParams{
		Name:        name,
		Platform:    platform,
		Handle:      handle,
		AccessToken: token,
		IsActive:    params.IsActive,
	})
	if err != nil {
		return store.SocialAccount{}, p.saveError(ctx, "failed to create social account", err)
	}

	p.logger.Info(ctx, "created social account")
	return account, nil
}

func (p *AccountProcessor) ListSocialAccounts(ctx context.Context) ([]store.SocialAccount, error) {
	accounts, err := p.store.ListSocialAccounts(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list social accounts", err)
		return nil, ErrFailedListAccounts
	}
	return accounts, nil
}

// CreateBusinessAccount stores a business. The slug is derived from the name when not given.
func (p *AccountProcessor) CreateBusinessAccount(ctx context.Context, params CreateBusinessAccountParams) (store.BusinessAccount, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return store.BusinessAccount{}, ErrNameRequired
	}
	slug := strings.TrimSpace(params.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if !slugPattern.MatchString(slug) {
		return store.BusinessAccount{}, ErrInvalidSlug
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "business_slug", Value: slug})

	business, err := p.store.CreateBusinessAccount(ctx, store.CreateBusinessAccountParams{
		Name:         name,
		Slug:         slug,
		ContactEmail: strings.TrimSpace(params.ContactEmail),
		Description:  strings.TrimSpace(params.Description),
	})
	if err != nil {
		return store.BusinessAccount{}, p.saveError(ctx, "failed to create business account", err)
	}

	p.logger.Info(ctx, "created business account")
	return business, nil
}

func (p *AccountProcessor) ListBusinessAccounts(ctx context.Context) ([]store.BusinessAccount, error) {
	businesses, err := p.store.ListBusinessAccounts(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list business accounts", err)
		return nil, ErrFailedListAccounts
	}
	return businesses, nil
}

// CreateBusinessCredential seals the secret and attaches the credential to an existing business.
func (p *AccountProcessor) CreateBusinessCredential(ctx context.Context, params CreateBusinessCredentialParams) (store.BusinessCredential, error) {
	label := strings.TrimSpace(params.Label)
	if label == "" {
		return store.BusinessCredential{}, ErrLabelRequired
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "business_id", Value: params.BusinessID})

	if _, err := p.store.GetBusinessAccountByID(ctx, params.BusinessID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.BusinessCredential{}, ErrBusinessNotFound
		}
		p.logger.Error(ctx, "failed to get business account", err)
		return store.BusinessCredential{}, ErrFailedSaveAccount
	}

	secret, err := p.seal(ctx, params.Secret)
	if err != nil {
		return store.BusinessCredential{}, err
	}

	credential, err := p.store.CreateBusinessCredential(ctx, store.CreateBusinessCredentialParams{
		BusinessID: params.BusinessID,
		Label:      label,
		Username:   strings.TrimSpace(params.Username),
		Secret:     secret,
		Metadata:   store.JSONB(params.Metadata),
	})
	if err != nil {
		return store.BusinessCredential{}, p.saveError(ctx, "failed to create business credential", err)
	}

	p.logger.Info(ctx, "created business credential")
	return credential, nil
}

func (p *AccountProcessor) ListBusinessCredentials(ctx context.Context, businessID int64) ([]store.BusinessCredential, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "business_id", Value: businessID})

	if _, err := p.store.GetBusinessAccountByID(ctx, businessID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBusinessNotFound
		}
		p.logger.Error(ctx, "failed to get business account", err)
		return nil, ErrFailedListAccounts
	}

	credentials, err := p.store.ListBusinessCredentials(ctx, businessID)
	if err != nil {
		p.logger.Error(ctx, "failed to list business credentials", err)
		return nil, ErrFailedListAccounts
	}
	return credentials, nil
}

func (p *AccountProcessor) CreateSocialAPICredential(ctx context.Context, params CreateSocialAPICredentialParams) (store.SocialAPICredential, error) {
	platform := strings.ToLower(strings.TrimSpace(params.Platform))
	appName := strings.TrimSpace(params.AppName)
	if !store.IsValidPlatform(platform) {
		return store.SocialAPICredential{}, ErrUnsupportedPlatform
	}
	if appName == "" {
		return store.SocialAPICredential{}, ErrAppNameRequired
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "platform", Value: platform},
		observability.Field{Key: "app_name", Value: appName},
	)

	sealed := make([]string, 3)
	for i, value := range []string{params.ClientSecret, params.AccessToken, params.RefreshToken} {
		v, err := p.seal(ctx, value)
		if err != nil {
			return store.SocialAPICredential{}, err
		}
		sealed[i] = v
	}

	credential, err := p.store.CreateSocialAPICredential(ctx, store.CreateSocialAPICredentialParams{
		Platform:     platform,
		AppName:      appName,
		ClientID:     strings.TrimSpace(params.ClientID),
		ClientSecret: sealed[0],
		AccessToken:  sealed[1],
		RefreshToken: sealed[2],
		APIBaseURL:   strings.TrimSpace(params.APIBaseURL),
		Metadata:     store.JSONB(params.Metadata),
	})
	if err != nil {
		return store.SocialAPICredential{}, p.saveError(ctx, "failed to create social api credential", err)
	}

	p.logger.Info(ctx, "created social api credential")
	return credential, nil
}

func (p *AccountProcessor) ListSocialAPICredentials(ctx context.Context) ([]store.SocialAPICredential, error) {
	credentials, err := p.store.ListSocialAPICredentials(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list social api credentials", err)
		return nil, ErrFailedListAccounts
	}
	return credentials, nil
}

func (p *AccountProcessor) seal(ctx context.Context, value string) (string, error) {
	if value == "" {
		return "", nil
	}
	sealed, err := p.sealer.Seal(value)
	if err != nil {
		p.logger.Error(ctx, "failed to seal secret", err)
		return "", ErrFailedSealSecret
	}
	return sealed, nil
}

func (p *AccountProcessor) saveError(ctx context.Context, msg string, err error) error {
	if errors.Is(err, store.ErrAlreadyExists) {
		p.logger.InfoWithError(ctx, msg, err)
		return ErrAlreadyExists
	}
	p.logger.Error(ctx, msg, err)
	return ErrFailedSaveAccount
}

// Slugify lower-cases name and joins its alphanumeric runs with dashes.
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
