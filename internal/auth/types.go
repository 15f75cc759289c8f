package auth

type LoginInput struct {
	Email    string
	Password string
}

type SignupInput struct {
	Email           string
	UserName        string
	Mobile          string
	Password        string
	ConfirmPassword string
}

// User-facing messages.
const (
	MsgLoginSucceeded  = "Login successful"
	MsgLoginRejected   = "Invalid Email or Password"
	MsgLoginFailed     = "Login failed"
	MsgSignupSucceeded = "Signup successful"
	MsgSignupRejected  = "Error Creating user"
	MsgSignupFailed    = "Signup failed"
	MsgLoggedOut       = "You have been logged out"
)
