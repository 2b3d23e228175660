package responses

type Register struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Login struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
