package handler

type PushRequest struct {
	Token       string         `json:"token" binding:"required"`
	Title       string         `json:"title" binding:"required"`
	Body        string         `json:"body" binding:"required"`
	ImageURL    string         `json:"imageUrl"`
	ClickAction string         `json:"clickAction"`
	Data        map[string]any `json:"data"`
}

// MailRequest binds from a JSON body or from query parameters.
type MailRequest struct {
	UID     string `json:"uid" form:"uid" binding:"required"`
	Title   string `json:"title" form:"title" binding:"required"`
	Content string `json:"content" form:"content" binding:"required"`
}
