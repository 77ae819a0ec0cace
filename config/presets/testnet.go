package presets

import (
	"time"

	"github.com/ballotpaper/go-ballotpaper/config"
)

const testnetBallot = "38f54a1f52ec226a40d806156fb0434c71ae09fd0073aa3de2e0515a8948b0f3"

func init() {
	register("testnet", testnet())
}

func testnet() config.Config {
	conf := config.DefaultConfig()
	conf.Host = "https://testnet.perlin.net"
	conf.Contract = testnetBallot

	conf.Client.RetryMax = 5
	conf.Client.RetryWaitMax = 5 * time.Second
	return conf
}
