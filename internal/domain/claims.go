package domain

import "github.com/golang-jwt/jwt/v5"

// Claims carrega a identidade emitida pelo serviço de autenticação externo.
// Este serviço apenas valida a assinatura; emissão e gestão de usuários
// acontecem fora daqui.
type Claims struct {
	UserID     int
	UserName   string
	UserRoleID int
	UserStores []string // lojas acessíveis ao portador do token
	jwt.RegisteredClaims
}

// CanAccessStore verifica se o token dá acesso à loja informada.
// Lista vazia significa acesso irrestrito (tokens de serviço).
func (c *Claims) CanAccessStore(storeID string) bool {
	if c == nil {
		return false
	}
	if len(c.UserStores) == 0 {
		return true
	}
	for _, id := range c.UserStores {
		if id == storeID {
			return true
		}
	}
	return false
}
