package profile

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/home-services/internal/audit"
	"github.com/BruksfildServices01/home-services/internal/domain/user"
	"github.com/BruksfildServices01/home-services/internal/dto"
	"github.com/BruksfildServices01/home-services/internal/httperr"
	"github.com/BruksfildServices01/home-services/internal/sessionstore"
	"github.com/BruksfildServices01/home-services/internal/validators"
)

type UpdateInput struct {
	Name    string
	Phone   string
	Address string
}

type UpdateResult struct {
	Profile dto.ProfileDTO `json:"profile"`
	Session *user.Session  `json:"session"`
	Message string         `json:"message"`
}

type UpdateProfile struct {
	users    user.Repository
	sessions *sessionstore.Store
	audit    *audit.Dispatcher
}

func NewUpdateProfile(
	users user.Repository,
	sessions *sessionstore.Store,
	audit *audit.Dispatcher,
) *UpdateProfile {
	return &UpdateProfile{users: users, sessions: sessions, audit: audit}
}

// Execute edits the user record and keeps the session projection in step.
func (uc *UpdateProfile) Execute(
	ctx context.Context,
	sess *user.Session,
	in UpdateInput,
) (*UpdateResult, error) {

	if err := user.Require(sess); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)

	if name == "" {
		return nil, httperr.ErrBusiness("name_required")
	}
	if phone != "" && !validators.IsPhone(phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	u, err := uc.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	u.Name = name
	u.Phone = phone
	u.Address = strings.TrimSpace(in.Address)
	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}

	updated := *sess
	updated.Refresh(u)
	if err := uc.sessions.SaveSession(ctx, &updated); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   u.ID,
		Action:   audit.ActionProfileUpdated,
		Entity:   audit.EntityUser,
		EntityID: u.ID,
	})

	return &UpdateResult{
		Profile: dto.NewProfileDTO(u),
		Session: &updated,
		Message: "Profile updated successfully!",
	}, nil
}

type UpdateAvatar struct {
	users user.Repository
	audit *audit.Dispatcher
}

func NewUpdateAvatar(users user.Repository, audit *audit.Dispatcher) *UpdateAvatar {
	return &UpdateAvatar{users: users, audit: audit}
}

// Execute stores the image URL as given; it is never fetched.
func (uc *UpdateAvatar) Execute(
	ctx context.Context,
	sess *user.Session,
	url string,
) (*dto.ProfileDTO, error) {

	if err := user.Require(sess); err != nil {
		return nil, err
	}

	url = strings.TrimSpace(url)
	if url == "" {
		return nil, httperr.ErrBusiness("invalid_avatar_url")
	}

	u, err := uc.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	u.AvatarURL = url
	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   u.ID,
		Action:   audit.ActionAvatarUpdated,
		Entity:   audit.EntityUser,
		EntityID: u.ID,
	})

	out := dto.NewProfileDTO(u)
	return &out, nil
}
