// Command balance logs in to the party service over gRPC and prints the generated parties.
//
//	balance -ids 1,2,3,4,5,6        balance the given characters
//	balance                         balance every stored character
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"party-lab/infrastructure/grpc/client"
	pb "party-lab/infrastructure/grpc/partypb"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

func main() {
	if err := run(); err != nil {
		color.Error.Println(err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	config, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if !config.Colours {
		color.Disable()
	}

	rawIDs := flag.String("ids", "", "comma separated character ids, every character when empty")
	strategy := flag.String("strategy", config.Strategy, "balanced, sized, classes or random")
	seed := flag.Uint64("seed", 0, "seed for the random strategy, time based when zero")
	timeout := flag.Duration("timeout", 10*time.Second, "overall deadline")
	flag.Parse()

	ids, err := parseIDs(*rawIDs)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c, err := client.Dial(config.Addr)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	login, err := c.Login(ctx, config.Username, config.Password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	color.Info.Printf("Logged in as %s (%s)\n", login.Username, login.Role)

	if len(ids) == 0 {
		characters, err := c.ListCharacters(ctx)
		if err != nil {
			return fmt.Errorf("list characters: %w", err)
		}
		ids = lo.Map(characters, func(ch *pb.Character, _ int) int64 { return ch.Id })
	}

	req := &pb.GeneratePartiesRequest{
		Ids:      ids,
		MinSize:  config.MinSize,
		MaxSize:  config.MaxSize,
		Strategy: *strategy,
	}
	if *seed != 0 {
		req.Seed = seed
	}
	resp, err := c.GenerateParties(ctx, req)
	if err != nil {
		return fmt.Errorf("generate parties: %w", err)
	}

	printParties(resp)
	return nil
}

func parseIDs(raw string) ([]int64, error) {
	parts := lo.Compact(lo.Map(strings.Split(raw, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func printParties(resp *pb.GeneratePartiesResponse) {
	if len(resp.Parties) == 0 {
		color.Warn.Println("No party generated")
		return
	}
	for i, party := range resp.Parties {
		header := fmt.Sprintf("  ====== Party %d · total %d · avg %.1f ======", i+1, party.TotalLevel, party.AverageLevel)
		color.New(color.BgBlack, color.FgGreen).Println(header)
		for _, m := range party.Members {
			fmt.Printf("  %-4d %-20s %-10s %-10s lvl %-3d %s\n",
				m.Id, m.Name, m.Race, color.Cyan.Render(m.CharClass), m.Level, color.Gray.Render(m.Player))
		}
	}
	if s := resp.Stats; s != nil {
		color.Comment.Printf("%s: %d characters in %d parties, spread %d -> %d after %d exchanges\n",
			s.Strategy, s.Characters, s.Parties, s.SeedSpread, s.FinalSpread, s.Iterations)
	}
}
