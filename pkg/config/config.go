package config

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	logger "github.com/iyouport-org/noticeboard/pkg/log"
	"github.com/iyouport-org/noticeboard/pkg/model"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const EnvPrefix = "NOTICEBOARD"

// StandaloneAPI addresses the notice server over the in-process socket.
const StandaloneAPI = "http://memsocket/notices"

// ConfigTOML is the struct mapped from the configuration file
type ConfigTOML struct {
	Log    *LogTOML    `mapstructure:"log" toml:"log" validate:"required"`
	Server *ServerTOML `mapstructure:"server" toml:"server" validate:"-"`
	Client *ClientTOML `mapstructure:"client" toml:"client" validate:"-"`
	DB     *DBTOML     `mapstructure:"db" toml:"db" validate:"-"`
}

type ConfigGo struct {
	toml   *ConfigTOML
	Log    *LogGo    //client,server
	Server *ServerGo //server
	Client *ClientGo //client
	DB     *DBGo     //server
}

// NewValidator returns a validator that also understands the notblank tag.
func NewValidator() *validator.Validate {
	validate := validator.New()
	err := validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimFunc(fl.Field().String(), unicode.IsSpace) != ""
	})
	if err != nil {
		log.Panic(err)
	}
	return validate
}

func (mc *ConfigTOML) Init() (cg *ConfigGo, err error) {
	err = NewValidator().Struct(mc)
	if err != nil {
		return nil, err
	}
	cg = &ConfigGo{}
	cg.toml = mc
	cg.Log, err = mc.Log.Init()
	if err != nil {
		log.Error(err)
		return nil, err
	}
	return cg, nil
}

func (conf *ConfigGo) InitServer() error {
	if conf.toml.Server == nil {
		conf.toml.Server = &ServerTOML{}
	}
	validate := NewValidator()
	err := validate.Struct(conf.toml.Server)
	if err != nil {
		log.Error(err)
		return err
	}
	conf.Server, err = conf.toml.Server.Init()
	if err != nil {
		log.Error(err)
		return err
	}
	if conf.toml.DB == nil {
		conf.toml.DB = &DBTOML{}
	}
	err = validate.Struct(conf.toml.DB)
	if err != nil {
		log.Error(err)
		return err
	}
	conf.DB, err = conf.toml.DB.Init()
	if err != nil {
		log.Error(err)
		return err
	}
	return nil
}

func (conf *ConfigGo) InitClient() error {
	if conf.toml.Client == nil {
		conf.toml.Client = &ClientTOML{}
	}
	err := NewValidator().Struct(conf.toml.Client)
	if err != nil {
		log.Error(err)
		return err
	}
	conf.Client, err = conf.toml.Client.Init()
	if err != nil {
		log.Error(err)
		return err
	}
	return nil
}

// Load reads the file named by the "config" key (or the default search
// path) and the NOTICEBOARD_* environment into a ConfigTOML.
func Load(v *viper.Viper) (*ConfigTOML, error) {
	if v.GetString("config") != "" {
		v.SetConfigFile(v.GetString("config"))
	} else {
		v.SetConfigName("noticeboard")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/noticeboard")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnv(v, "", reflect.TypeOf(ConfigTOML{})); err != nil {
		return nil, err
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	log.WithField("config", v.ConfigFileUsed()).Debug("config loaded")
	var confTOML ConfigTOML
	if err := v.Unmarshal(&confTOML); err != nil {
		return nil, err
	}
	return &confTOML, nil
}

// bindEnv registers every mapstructure key of t so that environment
// variables apply even to keys the file leaves out.
func bindEnv(v *viper.Viper, prefix string, t reflect.Type) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("mapstructure")
		if name == "" || name == "-" {
			continue
		}
		ft := field.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct {
			if err := bindEnv(v, prefix+name+".", ft); err != nil {
				return err
			}
			continue
		}
		if err := v.BindEnv(prefix + name); err != nil {
			return err
		}
	}
	return nil
}

func NewConf() (*ConfigGo, error) {
	confTOML, err := Load(viper.GetViper())
	if err != nil {
		log.Error(err)
		return nil, err
	}
	return confTOML.Init()
}

func NewConfClient() (conf *ConfigGo, err error) {
	conf, err = NewConf()
	if err != nil {
		return nil, err
	}
	err = conf.InitClient()
	return
}

func NewConfServer() (conf *ConfigGo, err error) {
	conf, err = NewConf()
	if err != nil {
		return nil, err
	}
	err = conf.InitServer()
	return
}

// NewConfStandalone configures both halves in one process. Without an
// explicit client.api the board talks to the in-process server.
func NewConfStandalone() (conf *ConfigGo, err error) {
	conf, err = NewConfServer()
	if err != nil {
		return nil, err
	}
	if conf.toml.Client == nil {
		conf.toml.Client = &ClientTOML{}
	}
	if conf.toml.Client.API == "" {
		conf.toml.Client.API = StandaloneAPI
	}
	err = conf.InitClient()
	return
}

func InitLog(conf *ConfigGo) error {
	log.SetFormatter(conf.Log.Formatter)
	log.SetOutput(conf.Log.File)
	log.SetLevel(conf.Log.Level)
	if conf.DB != nil && conf.Log.Persist {
		if err := conf.DB.DB.AutoMigrate(&model.Log{}); err != nil {
			log.Error(err)
			return err
		}
		log.AddHook(logger.NewDBHook(conf.DB.DB, log.InfoLevel))
	}
	return nil
}
