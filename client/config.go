package main

import (
	"flag"
	"os"
	"strings"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/HuXin0817/connect-corners/pkg/models/model"
)

var (
	ModeConf  = flag.String("mode", "local", "local, selfplay or join")
	ColorConf = flag.String("color", "BLUE", "your color")
	GamesConf = flag.Int("games", 10, "games to play in selfplay mode")
	AddrConf  = flag.String("addr", "127.0.0.1:8000", "server address for join mode")
	RoomConf  = flag.String("room", "", "room id for join mode")
	NameConf  = flag.String("name", "", "your player name")
	SeedConf  = flag.Int64("seed", 0, "random seed, 0 picks one")

	ColorOutput = model.NewConfig(colorDefault())
	Color       chess.Color
)

// colorDefault honors NO_COLOR.
func colorDefault() string {
	if os.Getenv("NO_COLOR") != "" {
		return "off"
	}
	return "on"
}

func initConfig() error {
	flag.Var(&ColorOutput, "colors", "colored board output (on/off)")
	flag.Parse()

	var err error
	Color, err = chess.ParseColor(*ColorConf)
	*ModeConf = strings.ToLower(*ModeConf)
	return err
}
