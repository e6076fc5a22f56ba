package management

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"
	"webup/backcheck"

	jwt "github.com/dgrijalva/jwt-go"
	log "github.com/sirupsen/logrus"
)

const tokenTTL = 5 * time.Minute

// HTTPSource queries a management gateway exposing the databases and mailboxes as JSON
type HTTPSource struct {
	URL        string
	SecretFile string
	client     *http.Client
}

// NewHTTPSource returns a source bound to the gateway of the management settings
func NewHTTPSource(spec backcheck.ManagementSpec) *HTTPSource {
	return &HTTPSource{
		URL:        strings.TrimRight(spec.URL, "/"),
		SecretFile: spec.SecretFile,
		client: &http.Client{
			Timeout: time.Duration(spec.Timeout) * time.Second,
		},
	}
}

// MailboxDatabases implements backcheck.ManagementSource
func (s *HTTPSource) MailboxDatabases(ctx context.Context) ([]backcheck.DatabaseRecord, error) {
	body, err := s.get(ctx, "/databases/mailbox", url.Values{"status": {"true"}})
	if err != nil {
		return nil, err
	}
	return backcheck.DatabasesFromJSON(body, backcheck.CategoryMailbox)
}

// PublicFolderDatabases implements backcheck.ManagementSource
func (s *HTTPSource) PublicFolderDatabases(ctx context.Context) ([]backcheck.DatabaseRecord, error) {
	body, err := s.get(ctx, "/databases/publicfolder", url.Values{"status": {"true"}})
	if err != nil {
		return nil, err
	}
	return backcheck.DatabasesFromJSON(body, backcheck.CategoryPublicFolder)
}

// Mailboxes implements backcheck.ManagementSource
func (s *HTTPSource) Mailboxes(ctx context.Context, databases []string) ([]backcheck.Mailbox, error) {
	query := url.Values{"resultsize": {"unlimited"}}
	for _, name := range databases {
		query.Add("database", name)
	}

	body, err := s.get(ctx, "/mailboxes", query)
	if err != nil {
		return nil, err
	}
	return backcheck.MailboxesFromJSON(body)
}

func (s *HTTPSource) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := s.URL + path + "?" + query.Encode()

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")

	if s.SecretFile != "" {
		token, err := s.token()
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.WithField("url", endpoint).Debugln("Querying management API")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}

// token signs a short-lived access token with the shared secret
func (s *HTTPSource) token() (string, error) {
	secret, err := ioutil.ReadFile(s.SecretFile)
	if err != nil {
		return "", fmt.Errorf("secret file not found: %w", err)
	}

	now := time.Now()
	claims := jwt.StandardClaims{
		Issuer:    "backcheck",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(tokenTTL).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(strings.TrimSpace(string(secret))))
}
