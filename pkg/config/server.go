package config

import "github.com/gin-gonic/gin"

type ServerTOML struct {
	Port int    `mapstructure:"port" toml:"port" validate:"gte=0,lte=65535"`
	Mode string `mapstructure:"mode" toml:"mode" validate:"omitempty,oneof=debug release test"`
}

type ServerGo struct {
	Port uint16
	Mode string
}

func (st *ServerTOML) Init() (sg *ServerGo, err error) {
	sg = &ServerGo{
		Port: uint16(st.Port),
		Mode: st.Mode,
	}
	if sg.Mode == "" {
		sg.Mode = gin.ReleaseMode
	}
	return sg, nil
}
