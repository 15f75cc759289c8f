package todoapi

import "encoding/json"

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body for POST /auth/signup.
type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	UserName        string `json:"userName"`
	Mobile          string `json:"mobile"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthResult is the payload of a successful login or signup.
type AuthResult struct {
	Token string `json:"token"`
}

// TaskRequest is the body for POST /todos and PUT /todos/{id}.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Todo is the backend's task object.
type Todo struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsComplete  bool   `json:"isComplete"`
}

// UnmarshalJSON also accepts the "isCompleted" spelling some backend
// versions emit. "isComplete" wins when both are present.
func (t *Todo) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID          int64  `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		IsComplete  *bool  `json:"isComplete"`
		IsCompleted *bool  `json:"isCompleted"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*t = Todo{
		ID:          raw.ID,
		Title:       raw.Title,
		Description: raw.Description,
	}
	switch {
	case raw.IsComplete != nil:
		t.IsComplete = *raw.IsComplete
	case raw.IsCompleted != nil:
		t.IsComplete = *raw.IsCompleted
	}
	return nil
}

// envelope is the backend's success wrapper.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// authBody accepts the token wrapped in "data" or at the top level.
type authBody struct {
	Data  *AuthResult `json:"data"`
	Token string      `json:"token"`
}

// errorBody is the best-effort shape of a backend error response.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
