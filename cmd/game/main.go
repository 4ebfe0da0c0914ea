package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/balance"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/boss"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/commons/logger_config"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/game"
)

func main() {
	bossName := flag.String("boss", "breacher", "boss encounter: breacher, mainframe, daemon, wyrm")
	balancePath := flag.String("balance", "", "optional balance yaml, hot-reloaded while running")
	flag.Parse()

	var kind boss.Kind
	switch *bossName {
	case "breacher":
		kind = boss.KindBreacher
	case "mainframe":
		kind = boss.KindMainframe
	case "daemon":
		kind = boss.KindDaemon
	case "wyrm":
		kind = boss.KindWyrm
	default:
		log.Fatalf("unknown boss %q", *bossName)
	}

	bal := balance.NewProvider()
	if *balancePath != "" {
		if err := bal.LoadFile(*balancePath); err != nil {
			log.Fatalf("load balance: %v", err)
		}
		watcher, err := balance.Watch(bal, *balancePath)
		if err != nil {
			logger_config.Warnf("balance watch disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(960, 720)
	ebiten.SetWindowTitle("Defend & Descend: " + kind.String())

	g := game.New(kind, bal)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil {
		log.Printf("run game: %v", err)
	}
}
