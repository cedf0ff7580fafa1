package secrets

import (
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// “Service” groups this app’s secrets in the OS keychain.
const KeyringService = "rolesync"

const (
	GreenhouseAccount = "rolesync:greenhouse"
	MondayAccount     = "rolesync:monday"
)

// Token resolves an API token: keychain first, then the env var, then the
// inline config value as a last resort for local dev.
func Token(account, envVar, inline string) (string, error) {
	if strings.TrimSpace(account) != "" {
		tok, err := keyring.Get(KeyringService, account)
		if err == nil && strings.TrimSpace(tok) != "" {
			return tok, nil
		}
	}
	if tok := strings.TrimSpace(os.Getenv(envVar)); tok != "" {
		return tok, nil
	}
	if strings.TrimSpace(inline) != "" {
		return inline, nil
	}
	return "", fmt.Errorf("no token for %s (set it in the keychain or via %s)", account, envVar)
}

func SetToken(account, token string) error {
	if strings.TrimSpace(account) == "" {
		return fmt.Errorf("keyring account name is empty")
	}
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("token is empty")
	}
	return keyring.Set(KeyringService, account, token)
}

func DeleteToken(account string) error {
	if strings.TrimSpace(account) == "" {
		return fmt.Errorf("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}
