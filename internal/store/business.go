package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type CreateBusinessAccountParams struct {
	Name         string
	Slug         string
	ContactEmail string
	Description  string
}

const businessAccountColumns = `id, name, slug, contact_email, description, is_active, created_at, updated_at`

const sqlCreateBusinessAccount = `
INSERT INTO business_accounts (name, slug, contact_email, description)
VALUES ($1, $2, $3, $4)
RETURNING ` + businessAccountColumns

func (s *Store) CreateBusinessAccount(ctx context.Context, params CreateBusinessAccountParams) (BusinessAccount, error) {
	var business BusinessAccount
	err := s.db.GetContext(ctx, &business, sqlCreateBusinessAccount,
		params.Name,
		params.Slug,
		params.ContactEmail,
		params.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return BusinessAccount{}, fmt.Errorf("business account: %w", ErrAlreadyExists)
		}
		s.logger.Error(ctx, "failed to create business account", err)
		return BusinessAccount{}, fmt.Errorf("failed to create business account: %w", err)
	}
	return business, nil
}

const sqlGetBusinessAccountByID = `
SELECT ` + businessAccountColumns + `
FROM business_accounts
WHERE id = $1
`

func (s *Store) GetBusinessAccountByID(ctx context.Context, businessID int64) (BusinessAccount, error) {
	var business BusinessAccount
	err := s.db.GetContext(ctx, &business, sqlGetBusinessAccountByID, businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BusinessAccount{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get business account", err)
		return BusinessAccount{}, fmt.Errorf("failed to get business account: %w", err)
	}
	return business, nil
}

const sqlListBusinessAccounts = `
SELECT ` + businessAccountColumns + `
FROM business_accounts
ORDER BY name ASC
`

func (s *Store) ListBusinessAccounts(ctx context.Context) ([]BusinessAccount, error) {
	businesses := []BusinessAccount{}
	if err := s.db.SelectContext(ctx, &businesses, sqlListBusinessAccounts); err != nil {
		s.logger.Error(ctx, "failed to list business accounts", err)
		return nil, fmt.Errorf("failed to list business accounts: %w", err)
	}
	return businesses, nil
}

type CreateBusinessCredentialParams struct {
	BusinessID int64
	Label      string
	Username   string
	Secret     string
	Metadata   JSONB
}

const businessCredentialColumns = `id, business_id, label, username, secret, metadata, is_active, created_at, updated_at`

const sqlCreateBusinessCredential = `
INSERT INTO business_credentials (business_id, label, username, secret, metadata)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + businessCredentialColumns

// CreateBusinessCredential stores a credential. Secret is expected to be sealed already.
func (s *Store) CreateBusinessCredential(ctx context.Context, params CreateBusinessCredentialParams) (BusinessCredential, error) {
	var credential BusinessCredential
	err := s.db.GetContext(ctx, &credential, sqlCreateBusinessCredential,
		params.BusinessID,
		params.Label,
		params.Username,
		params.Secret,
		params.Metadata)
	if err != nil {
		if isUniqueViolation(err) {
			return BusinessCredential{}, fmt.Errorf("business credential: %w", ErrAlreadyExists)
		}
		s.logger.Error(ctx, "failed to create business credential", err)
		return BusinessCredential{}, fmt.Errorf("failed to create business credential: %w", err)
	}
	return credential, nil
}

const sqlListBusinessCredentials = `
SELECT ` + businessCredentialColumns + `
FROM business_credentials
WHERE business_id = $1
ORDER BY label ASC
`

func (s *Store) ListBusinessCredentials(ctx context.Context, businessID int64) ([]BusinessCredential, error) {
	credentials := []BusinessCredential{}
	if err := s.db.SelectContext(ctx, &credentials, sqlListBusinessCredentials, businessID); err != nil {
		s.logger.Error(ctx, "failed to list business credentials", err)
		return nil, fmt.Errorf("failed to list business credentials: %w", err)
	}
	return credentials, nil
}

type CreateSocialAPICredentialParams struct {
	Platform     string
	AppName      string
	ClientID     string
	ClientSecret string
	AccessToken  string
	RefreshToken string
	APIBaseURL   string
	Metadata     JSONB
}

const socialAPICredentialColumns = `id, platform, app_name, client_id, client_secret, access_token, refresh_token, api_base_url, metadata, is_active, created_at, updated_at`

const sqlCreateSocialAPICredential = `
INSERT INTO social_api_credentials (platform, app_name, client_id, client_secret, access_token, refresh_token, api_base_url, metadata)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + socialAPICredentialColumns

// CreateSocialAPICredential stores platform app credentials. Secret fields are expected to be sealed already.
func (s *Store) CreateSocialAPICredential(ctx context.Context, params CreateSocialAPICredentialParams) (SocialAPICredential, error) {
	var credential SocialAPICredential
	err := s.db.GetContext(ctx, &credential, sqlCreateSocialAPICredential,
		params.Platform,
		params.AppName,
		params.ClientID,
		params.ClientSecret,
		params.AccessToken,
		params.RefreshToken,
		params.APIBaseURL,
		params.Metadata)
	if err != nil {
		if isUniqueViolation(err) {
			return SocialAPICredential{}, fmt.Errorf("social api credential: %w", ErrAlreadyExists)
		}
		s.logger.Error(ctx, "failed to create social api credential", err)
		return SocialAPICredential{}, fmt.Errorf("failed to create social api credential: %w", err)
	}
	return credential, nil
}

const sqlListSocialAPICredentials = `
SELECT ` + socialAPICredentialColumns + `
FROM social_api_credentials
ORDER BY platform ASC, app_name ASC
`

func (s *Store) ListSocialAPICredentials(ctx context.Context) ([]SocialAPICredential, error) {
	credentials := []SocialAPICredential{}
	if err := s.db.SelectContext(ctx, &credentials, sqlListSocialAPICredentials); err != nil {
		s.logger.Error(ctx, "failed to list social api credentials", err)
		return nil, fmt.Errorf("failed to list social api credentials: %w", err)
	}
	return credentials, nil
}
