package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HuXin0817/connect-corners/pkg/models/model"
	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	logx.Must(initConfig())

	seed := *SeedConf
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	render := NewRenderer(bool(ColorOutput))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch *ModeConf {
	case "local":
		fmt.Println(usage)
		l, err := NewLocalGame(Color, rng, os.Stdin, os.Stdout, render)
		logx.Must(err)
		_, err = l.Run()
		logx.Must(err)
	case "selfplay":
		wins, err := SelfPlay(*GamesConf, rng, model.NewBar(*GamesConf, "self play"))
		logx.Must(err)
		printWins(os.Stdout, render, wins, *GamesConf)
	case "join":
		if *RoomConf == "" {
			logx.Must(fmt.Errorf("join mode needs -room"))
		}
		fmt.Println(usage)
		logx.Must(Join(ctx, *AddrConf, *RoomConf, *NameConf, Color, os.Stdin, os.Stdout, render))
	default:
		logx.Must(fmt.Errorf("unknown mode %q", *ModeConf))
	}
}
