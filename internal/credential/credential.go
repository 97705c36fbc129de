package credential

import "errors"

// TokenProvider expõe a capacidade de obter um token de acesso para as APIs
// de reporting. Cada integrador recebe a variante adequada: token estático
// (TikTok, Meta) ou troca OAuth2 client_credentials (Apple Search Ads).
type TokenProvider interface {
	AccessToken() (string, error)
}

// StaticToken devolve um token pré-compartilhado como recebido.
type StaticToken struct {
	token string
}

func NewStaticToken(token string) *StaticToken {
	return &StaticToken{token: token}
}

func (s *StaticToken) AccessToken() (string, error) {
	if s.token == "" {
		return "", errors.New("token de acesso não configurado")
	}
	return s.token, nil
}
