package store

import (
	"context"
	"fmt"

	"github.com/lib/pq"
)

type CreateSocialAccountParams struct {
	Name        string
	Platform    string
	Handle      string
	AccessToken string
	IsActive    bool
}

const socialAccountColumns = `id, name, platform, handle, access_token, is_active, created_at`

const sqlCreateSocialAccount = `
INSERT INTO social_accounts (name, platform, handle, access_token, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + socialAccountColumns

func (s *Store) CreateSocialAccount(ctx context.Context, params CreateSocialAccountParams) (SocialAccount, error) {
	var account SocialAccount
	err := s.db.GetContext(ctx, &account, sqlCreateSocialAccount,
		params.Name,
		params.Platform,
		params.Handle,
		params.AccessToken,
		params.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return SocialAccount{}, fmt.Errorf("social account: %w", ErrAlreadyExists)
		}
		s.logger.Error(ctx, "failed to create social account", err)
		return SocialAccount{}, fmt.Errorf("failed to create social account: %w", err)
	}
	return account, nil
}

const sqlListActiveSocialAccounts = `
SELECT ` + socialAccountColumns + `
FROM social_accounts
WHERE is_active = TRUE
ORDER BY id ASC
`

// ListActiveSocialAccounts returns every active account ordered by id
func (s *Store) ListActiveSocialAccounts(ctx context.Context) ([]SocialAccount, error) {
	accounts := []SocialAccount{}
	err := s.db.SelectContext(ctx, &accounts, sqlListActiveSocialAccounts)
	if err != nil {
		s.logger.Error(ctx, "failed to list active social accounts", err)
		return nil, fmt.Errorf("failed to list active social accounts: %w", err)
	}
	return accounts, nil
}

const sqlListActiveSocialAccountsBySelection = `
SELECT ` + socialAccountColumns + `
FROM social_accounts
WHERE is_active = TRUE
  AND name = ANY($1)
  AND platform = ANY($2)
ORDER BY id ASC
`

// ListActiveSocialAccountsBySelection returns active accounts matching any of names on any of platforms
func (s *Store) ListActiveSocialAccountsBySelection(ctx context.Context, names, platforms []string) ([]SocialAccount, error) {
	accounts := []SocialAccount{}
	err := s.db.SelectContext(ctx, &accounts, sqlListActiveSocialAccountsBySelection, pq.Array(names), pq.Array(platforms))
	if err != nil {
		s.logger.Error(ctx, "failed to list social accounts by selection", err)
		return nil, fmt.Errorf("failed to list social accounts by selection: %w", err)
	}
	return accounts, nil
}

const sqlListSocialAccounts = `
SELECT ` + socialAccountColumns + `
FROM social_accounts
ORDER BY name ASC, platform ASC
`

func (s *Store) ListSocialAccounts(ctx context.Context) ([]SocialAccount, error) {
	accounts := []SocialAccount{}
	err := s.db.SelectContext(ctx, &accounts, sqlListSocialAccounts)
	if err != nil {
		s.logger.Error(ctx, "failed to list social accounts", err)
		return nil, fmt.Errorf("failed to list social accounts: %w", err)
	}
	return accounts, nil
}
