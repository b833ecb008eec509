package env

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golangid/attendo/pkg/helper"
	"github.com/joho/godotenv"
)

// Env model
type Env struct {
	ServiceName string
	// Env on application
	Environment       string
	LoadConfigTimeout time.Duration

	DebugMode bool

	// HTTPPort config
	HTTPPort uint16

	// BasicAuthUsername config
	BasicAuthUsername string
	// BasicAuthPassword config
	BasicAuthPassword string

	// JaegerTracingHost env
	JaegerTracingHost string

	// Database environment
	DbMongoWriteHost, DbMongoReadHost string
	DbMongoDatabase                   string
	DbRedisReadDSN, DbRedisWriteDSN   string

	// CORS Environment
	CORSAllowOrigins, CORSAllowMethods, CORSAllowHeaders []string
	CORSAllowCredential                                  bool

	// PublicDir static page root
	PublicDir string
	// BcryptCost password hashing cost factor
	BcryptCost int
	// JoinLockTimeout max wait of per email join lock
	JoinLockTimeout time.Duration

	StartAt time.Time
}

var env Env

// BaseEnv get global basic environment
func BaseEnv() Env {
	return env
}

// SetEnv set env for mocking data env
func SetEnv(newEnv Env) {
	env = newEnv
}

// Load environment, panic with all invalid variable at once
func Load(serviceName string) {
	// load main .env, process environment take precedence
	err := godotenv.Load(os.Getenv(helper.WORKDIR) + ".env")
	if err != nil {
		log.Printf("Warning: load env, %v", err)
	}

	newEnv, err := Parse(serviceName, os.LookupEnv)
	if err != nil {
		panic("Basic environment error: \n" + err.Error())
	}
	env = newEnv
}

// Parse environment from lookup function
func Parse(serviceName string, lookup func(key string) (string, bool)) (e Env, err error) {
	mErrs := helper.NewMultiError()
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	e.ServiceName = serviceName
	e.Environment = get("ENVIRONMENT")
	e.StartAt = time.Now()

	e.LoadConfigTimeout = parseDuration(mErrs, get, "LOAD_CONFIG_TIMEOUT", 10*time.Second)
	e.JoinLockTimeout = parseDuration(mErrs, get, "JOIN_LOCK_TIMEOUT", 5*time.Second)

	e.DebugMode = true
	if v := get("DEBUG_MODE"); v != "" {
		if e.DebugMode, err = strconv.ParseBool(v); err != nil {
			mErrs.Append("DEBUG_MODE", errors.New("DEBUG_MODE environment must in boolean format"))
		}
	}

	e.HTTPPort = 3000
	if v := get("HTTP_PORT"); v != "" {
		port, err := strconv.ParseUint(v, 10, 16)
		if err != nil || port == 0 {
			mErrs.Append("HTTP_PORT", errors.New("HTTP_PORT environment must in port number format"))
		}
		e.HTTPPort = uint16(port)
	}

	e.BasicAuthUsername = get("BASIC_AUTH_USERNAME")
	e.BasicAuthPassword = get("BASIC_AUTH_PASS")
	e.JaegerTracingHost = get("JAEGER_TRACING_HOST")

	// database environment
	var ok bool
	e.DbMongoWriteHost, ok = lookup("MONGODB_HOST_WRITE")
	if !ok || e.DbMongoWriteHost == "" {
		mErrs.Append("MONGODB_HOST_WRITE", errors.New("missing MONGODB_HOST_WRITE environment"))
	}
	e.DbMongoReadHost = get("MONGODB_HOST_READ")
	e.DbMongoDatabase = get("MONGODB_DATABASE")
	if e.DbMongoDatabase == "" {
		e.DbMongoDatabase = "createevent"
	}
	e.DbRedisReadDSN = get("REDIS_READ_DSN")
	e.DbRedisWriteDSN = get("REDIS_WRITE_DSN")

	parseCorsEnv(&e, get)

	e.PublicDir = get("PUBLIC_DIR")
	if e.PublicDir == "" {
		e.PublicDir = "web/public"
	}

	e.BcryptCost = 10
	if v := get("BCRYPT_COST"); v != "" {
		if e.BcryptCost, err = strconv.Atoi(v); err != nil || e.BcryptCost < 4 || e.BcryptCost > 31 {
			mErrs.Append("BCRYPT_COST", errors.New("BCRYPT_COST environment must be integer between 4 and 31"))
		}
	}

	if mErrs.HasError() {
		return e, mErrs
	}
	return e, nil
}

func parseDuration(mErrs helper.MultiError, get func(string) string, key string, defaultValue time.Duration) time.Duration {
	v := get(key)
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		mErrs.Append(key, fmt.Errorf("%s environment must in positive duration format, ex: 10s", key))
		return defaultValue
	}
	return d
}

func parseCorsEnv(e *Env, get func(string) string) {
	CORSAllowOrigins := get("CORS_ALLOW_ORIGINS")
	if CORSAllowOrigins == "" {
		e.CORSAllowOrigins = []string{"*"}
	} else {
		e.CORSAllowOrigins = strings.Split(CORSAllowOrigins, ",")
	}
	CORSAllowMethods := get("CORS_ALLOW_METHODS")
	if CORSAllowMethods == "" {
		e.CORSAllowMethods = []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		}
	} else {
		e.CORSAllowMethods = strings.Split(CORSAllowMethods, ",")
	}
	CORSAllowHeaders := get("CORS_ALLOW_HEADERS")
	if CORSAllowHeaders != "" {
		e.CORSAllowHeaders = strings.Split(CORSAllowHeaders, ",")
	}
	e.CORSAllowCredential, _ = strconv.ParseBool(get("CORS_ALLOW_CREDENTIAL"))
}
