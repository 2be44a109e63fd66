package analytics

import (
	"encoding/json"
	"fmt"

	"github.com/loupe-hq/loupe/pkg/secrets"
)

// Factory builds per-user providers from sealed credentials.
// Credentials are decrypted once per user and handed to the provider;
// callers must not retain them beyond the user's sub-batch.
type Factory struct {
	box *secrets.Box
}

// NewFactory creates a provider factory around the credential box.
func NewFactory(box *secrets.Box) *Factory {
	return &Factory{box: box}
}

// Build constructs a provider for one analytics connection. A bad
// decrypt, malformed credential JSON, or invalid credential shape
// returns an error; callers downgrade to None() and continue, since a
// broken connection must not abort the batch.
func (f *Factory) Build(provider string, sealedCredentials []byte) (Provider, error) {
	raw, err := f.box.Open(sealedCredentials)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt %s credentials: %w", provider, err)
	}

	switch provider {
	case ProviderPostHog:
		var creds PostHogCredentials
		if err := json.Unmarshal(raw, &creds); err != nil {
			return nil, fmt.Errorf("malformed posthog credentials: %w", err)
		}
		return NewPostHogProvider(creds)
	case ProviderGA4:
		var creds GA4Credentials
		if err := json.Unmarshal(raw, &creds); err != nil {
			return nil, fmt.Errorf("malformed ga4 credentials: %w", err)
		}
		return NewGA4Provider(creds)
	case ProviderSupabase:
		var creds SupabaseCredentials
		if err := json.Unmarshal(raw, &creds); err != nil {
			return nil, fmt.Errorf("malformed supabase credentials: %w", err)
		}
		return NewOwnedStoreProvider(creds)
	default:
		return nil, fmt.Errorf("unknown analytics provider %q", provider)
	}
}
