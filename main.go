package main

import (
	"context"
	"time"

	"rgbcal/bus"
	"rgbcal/errcode"
	"rgbcal/services/app"
	"rgbcal/services/config"
	"rgbcal/services/hal"
	"rgbcal/services/heartbeat"
	"rgbcal/services/state"
	"rgbcal/types"
	"rgbcal/x/logx"
)

// deviceID selects the embedded config. Override with
// -ldflags "-X main.deviceID=pico-dev".
var deviceID = "pico"

const configTimeout = 5 * time.Second

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[main] boot, device", deviceID)

	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, deviceID)
	b := bus.NewBus(8)

	config.NewConfigService().Start(ctx, b.NewConnection("config"))
	boardCfg := waitBoardConfig(b.NewConnection("main"))

	board, err := hal.Open(boardCfg, hal.DefaultFactories())
	if err != nil {
		panic("[main] hal: " + err.Error())
	}

	shared := state.New()
	shared.Observe(b.NewConnection("state"))

	a, err := app.New(board, shared, logx.New(board.Log))
	if err != nil {
		panic("[main] app: " + err.Error())
	}
	_ = heartbeat.New(a).Start(ctx, b.NewConnection("heartbeat"))

	println("[main] running")
	name := a.Run(ctx)
	println("[main] task returned:", name)
	panic("fell off end of main loop")
}

// waitBoardConfig blocks until the retained board config is available.
func waitBoardConfig(conn *bus.Connection) types.BoardConfig {
	sub := conn.Subscribe(config.Topic("board"))
	defer conn.Unsubscribe(sub)

	select {
	case msg := <-sub.Channel():
		cfg, err := types.DecodeBoardConfig(msg.Payload)
		if err != nil {
			panic("[main] board config: " + err.Error())
		}
		return cfg
	case <-time.After(configTimeout):
		panic("[main] board config: " + errcode.NoConfig.Error())
	}
}
