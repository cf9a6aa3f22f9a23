package auth

// Claims representa al usuario detrás de una cookie de sesión.
type Claims struct {
	SessionID string
	UserID    int
	Email     string
	IsAdmin   bool
}
