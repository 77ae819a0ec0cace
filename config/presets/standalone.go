package presets

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ballotpaper/go-ballotpaper/config"
)

func init() {
	register("standalone", standalone())
}

func standalone() config.Config {
	conf := config.DefaultConfig()
	conf.Host = "http://localhost:9000"
	conf.DataDir = filepath.Join(os.TempDir(), "ballotpaper")

	conf.Client.RetryMax = 1
	conf.Client.RetryWaitMin = 10 * time.Millisecond
	conf.Client.RetryWaitMax = 100 * time.Millisecond
	conf.Client.RequestTimeout = 5 * time.Second
	conf.Client.RequestsPerSecond = 0

	conf.Logging.Level = "debug"
	return conf
}
