package asaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-spend-sync/internal/config"
)

const (
	assertionAudience = "https://appleid.apple.com"
	assertionLifetime = 180 * 24 * time.Hour
)

// TokenManager obtém o token de acesso do Apple Search Ads via OAuth2
// client_credentials. O client_secret é um JWT ES256 assinado localmente com
// a chave .p8 emitida pela Apple; ele é regenerado a cada execução (barato e
// evita bugs de expiração) e gravado no arquivo configurado como artefato.
type TokenManager struct {
	cfg        *config.Config
	httpClient *http.Client
	mu         sync.Mutex
	now        func() time.Time
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		now: time.Now,
	}
}

// AccessToken implementa credential.TokenProvider.
//
// Precedência:
//  1. token de acesso definido externamente (ASA_ACCESS_TOKEN) é usado como
//     está, sem troca;
//  2. caso contrário, gera o client assertion e o troca por um access_token.
func (tm *TokenManager) AccessToken() (string, error) {
	if token := strings.TrimSpace(tm.cfg.ASA.AccessToken); token != "" {
		return token, nil
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	assertion, err := tm.buildClientAssertion()
	if err != nil {
		return "", err
	}

	return tm.exchange(assertion)
}

// buildClientAssertion monta e assina o client_secret:
// sub=client_id, aud=appleid, iss=team_id, iat=agora, exp=agora+180d,
// header kid com o identificador da chave, algoritmo ES256 (P-256).
func (tm *TokenManager) buildClientAssertion() (string, error) {
	pemBytes, err := tm.privateKeyPEM()
	if err != nil {
		return "", err
	}

	privateKey, err := jwt.ParseECPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return "", fmt.Errorf("erro ao interpretar a chave privada do Search Ads: %w", err)
	}

	now := tm.now().UTC()
	claims := jwt.MapClaims{
		"sub": tm.cfg.ASA.ClientID,
		"aud": assertionAudience,
		"iat": now.Unix(),
		"exp": now.Add(assertionLifetime).Unix(),
		"iss": tm.cfg.ASA.TeamID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = tm.cfg.ASA.KeyID

	assertion, err := token.SignedString(privateKey)
	if err != nil {
		return "", fmt.Errorf("erro ao assinar o client assertion: %w", err)
	}

	if err := tm.cacheAssertion(assertion); err != nil {
		logrus.WithError(err).Warn("asa: failed to cache client secret file")
	}

	return assertion, nil
}

func (tm *TokenManager) privateKeyPEM() ([]byte, error) {
	if pem := strings.TrimSpace(tm.cfg.ASA.PrivateKeyPEM); pem != "" {
		return []byte(pem), nil
	}

	if tm.cfg.ASA.PrivateKeyFile != "" {
		data, err := os.ReadFile(tm.cfg.ASA.PrivateKeyFile)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler a chave privada do Search Ads: %w", err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("chave privada do Search Ads não configurada")
}

func (tm *TokenManager) cacheAssertion(assertion string) error {
	if tm.cfg.ASA.ClientSecretFile == "" {
		return nil
	}
	return os.WriteFile(tm.cfg.ASA.ClientSecretFile, []byte(assertion), 0o600)
}

// exchange troca o client assertion por um access_token no endpoint OAuth2.
// A resposta sem access_token é erro fatal.
func (tm *TokenManager) exchange(assertion string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", tm.cfg.ASA.ClientID)
	form.Set("client_secret", assertion)
	form.Set("scope", tm.cfg.ASA.Scope)

	resp, err := tm.httpClient.Post(
		tm.cfg.ASA.TokenURL,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("erro ao trocar o client assertion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("troca de token falhou com status: %s", resp.Status)
	}

	payload := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("erro ao decodificar a resposta da troca de token: %w", err)
	}

	accessToken, _ := payload["access_token"].(string)
	if accessToken == "" {
		return "", fmt.Errorf("troca de token do Apple Search Ads sem access_token: %v", payload)
	}

	return accessToken, nil
}
