package booking

import (
	"context"

	"github.com/BruksfildServices01/home-services/internal/catalog"
	"github.com/BruksfildServices01/home-services/internal/domain/user"
)

type HomeView struct {
	UserName string            `json:"user_name"`
	Services []catalog.Service `json:"services"`
}

type LoadHome struct {
	services []catalog.Service
}

func NewLoadHome(services []catalog.Service) *LoadHome {
	return &LoadHome{services: services}
}

func (uc *LoadHome) Execute(_ context.Context, sess *user.Session) (*HomeView, error) {
	if err := user.Require(sess); err != nil {
		return nil, err
	}
	return &HomeView{UserName: sess.Name, Services: uc.services}, nil
}
