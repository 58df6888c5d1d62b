package config

import (
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type ClientTOML struct {
	Port    int           `mapstructure:"port" toml:"port" validate:"gte=0,lte=65535"`
	API     string        `mapstructure:"api" toml:"api" validate:"required,url"`
	Secret  string        `mapstructure:"secret" toml:"secret" validate:"required,min=16"`
	Timeout time.Duration `mapstructure:"timeout" toml:"timeout" validate:"gte=0"`
	Mode    string        `mapstructure:"mode" toml:"mode" validate:"omitempty,oneof=debug release test"`
}

type ClientGo struct {
	Port    uint16
	API     *url.URL
	Secret  []byte
	Timeout time.Duration
	Mode    string
}

func (ct *ClientTOML) Init() (cg *ClientGo, err error) {
	api, err := url.Parse(strings.TrimSuffix(ct.API, "/"))
	if err != nil {
		log.WithField("client.api", ct.API).Error(err)
		return nil, err
	}
	cg = &ClientGo{
		Port:    uint16(ct.Port),
		API:     api,
		Secret:  []byte(ct.Secret),
		Timeout: ct.Timeout,
		Mode:    ct.Mode,
	}
	if cg.Mode == "" {
		cg.Mode = gin.ReleaseMode
	}
	return cg, nil
}
