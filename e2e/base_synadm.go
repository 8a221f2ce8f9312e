package e2e

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"matrix-contacts/infrastructure/synadm"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// BaseSynadmSuite runs steps against a real synadm installation.
type BaseSynadmSuite struct {
	suite.Suite
	Config Config
	Client synadm.IAdminClient
	debug  bytes.Buffer
}

// SetupSuite loads the environment configuration and builds the admin client.
func (s *BaseSynadmSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.User == "" {
		s.T().Skip("E2E_SYNADM_USER is not set")
	}

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	runner := synadm.NewExecRunner(log, s.Config.SynadmBin, s.Config.SynadmConfig, "json", &s.debug, false)
	var echo func(string)
	if s.Config.DebugJSON {
		echo = runner.Echo
	}
	s.Client = synadm.NewClient(runner, log, echo)
}

// WithStep prints a header, runs fn with a bounded context and flushes the synadm echoes to the test log.
func (s *BaseSynadmSuite) WithStep(name string, fn func(ctx context.Context)) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	fn(ctx)
	s.T().Logf("%s in %v\n%s", name, time.Since(start), s.debug.String())
	s.debug.Reset()
}
