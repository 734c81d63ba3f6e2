package services

import (
	"strconv"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
)

type FormField struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Required bool   `json:"required"`
}

var postFormFields = []FormField{
	{Name: "text", Kind: "textarea", Required: true},
	{Name: "group", Kind: "select", Required: false},
	{Name: "image", Kind: "file", Required: false},
}

// PostForm is the descriptor of the create and edit pages. Errors is only
// filled when a submission got rejected.
type PostForm struct {
	IsEdit bool              `json:"is_edit"`
	Action string            `json:"action"`
	Fields []FormField       `json:"fields"`
	Values map[string]string `json:"values"`
	Errors map[string]string `json:"errors,omitempty"`
	Groups []models.Group    `json:"groups"`
}

// NewPostForm builds a blank form, or one prefilled with post when it is given.
func NewPostForm(post *models.Post) (PostForm, error) {
	groups, err := ListGroup()
	if err != nil {
		return PostForm{}, err
	}

	form := PostForm{
		Action: PostCreateURL(),
		Fields: postFormFields,
		Values: map[string]string{"text": "", "group": "", "image": ""},
		Groups: groups,
	}
	if post != nil {
		form.IsEdit = true
		form.Action = PostEditURL(post.ID)
		form.Values["text"] = post.Text
		form.Values["image"] = post.ImageURL
		if post.GroupID != nil {
			form.Values["group"] = strconv.FormatUint(uint64(*post.GroupID), 10)
		}
	}
	return form, nil
}

// Redisplay puts the rejected submission back into the form.
func (f PostForm) Redisplay(in PostInput, verr *ValidationError) PostForm {
	f.Values["text"] = in.Text
	f.Values["group"] = in.Group
	if verr != nil {
		f.Errors = verr.Fields
	}
	return f
}
