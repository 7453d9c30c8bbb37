package domain

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Credentials - содержимое документа users: имя пользователя -> пароль
type Credentials map[string]string

func DefaultCredentials() Credentials {
	return Credentials{DefaultAdminUsername: DefaultAdminPassword}
}

func (c Credentials) Has(username string) bool {
	_, ok := c[username]
	return ok
}

// Matches сравнивает пароль в открытом виде
func (c Credentials) Matches(username, password string) bool {
	stored, ok := c[username]
	return ok && stored == password
}

func (c Credentials) Clone() Credentials {
	out := make(Credentials, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
