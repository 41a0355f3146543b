package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/pior/dict"
)

const clientID = "dict-cli 1.0"

type config struct {
	Server  string   `toml:"server"`
	Servers []string `toml:"servers"`
	User    string   `toml:"user"`
	Secret  string   `toml:"secret"`
}

func loadConfig(path string) (config, error) {
	cfg := config{Server: "dict.org:2628"}
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	server := flag.String("server", "", "server address (overrides config)")
	user := flag.String("user", "", "authentication user (overrides config)")
	secret := flag.String("secret", "", "authentication secret (overrides config)")
	verbose := flag.Bool("v", false, "log protocol exchanges")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		logger = logger.Level(zerolog.WarnLevel)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if *server != "" {
		cfg.Server = *server
		cfg.Servers = nil
	}
	if *user != "" {
		cfg.User = *user
	}
	if *secret != "" {
		cfg.Secret = *secret
	}
	if len(cfg.Servers) == 0 {
		cfg.Servers = []string{cfg.Server}
	}

	cli := &client{
		cfg:    cfg,
		logger: logger,
		dial:   dict.NewBreakerDialer(nil, 1, time.Minute, 30*time.Second),
	}
	cli.servers, err = dict.NewServerList(cfg.Servers...)
	if err != nil {
		logger.Fatal().Err(err).Msg("no servers configured")
	}

	// A dict:// locator argument runs one lookup and exits.
	if args := flag.Args(); len(args) == 1 && strings.HasPrefix(args[0], "dict://") {
		locator, err := dict.ParseLocator(args[0])
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid locator")
		}
		if err := locator.ExecuteWith(context.Background(), cli.dial, os.Stdout); err != nil {
			logger.Fatal().Err(err).Msg("lookup failed")
		}
		return
	}

	cli.interactive()
}

type client struct {
	cfg     config
	logger  zerolog.Logger
	dial    dict.Dialer
	servers *dict.ServerList
}

// withSession runs fn over a fresh session: dial the chosen mirror,
// announce the client, authenticate when configured, QUIT when done.
func (c *client) withSession(ctx context.Context, word string, fn func(*dict.Session) error) error {
	addr := c.servers.Pick(word)
	c.logger.Debug().Str("addr", addr).Str("word", word).Msg("dialing")

	sess, err := dict.DialWith(ctx, c.dial, addr)
	if err != nil {
		return err
	}
	defer sess.Close()

	c.logger.Debug().
		Str("banner", sess.Banner()).
		Strs("capabilities", sess.Capabilities()).
		Msg("connected")

	if err := sess.Client(ctx, clientID); err != nil {
		return err
	}
	if c.cfg.User != "" {
		if err := sess.Authenticate(ctx, c.cfg.User, c.cfg.Secret); err != nil {
			return err
		}
	}

	if err := fn(sess); err != nil {
		return err
	}
	return sess.Quit(ctx)
}

func (c *client) interactive() {
	fmt.Println("DICT protocol client")
	fmt.Println("====================")
	fmt.Println("Commands: define <word> [db], match <word> [strategy [db]], db, strat,")
	fmt.Println("          catalog, info <db>, server, status, quit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		parts := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(parts) == 0 {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		c.command(ctx, parts)
		cancel()
	}
}

func (c *client) command(ctx context.Context, parts []string) {
	var err error

	switch strings.ToLower(parts[0]) {
	case "define", "d":
		if len(parts) < 2 || len(parts) > 3 {
			fmt.Println("Usage: define <word> [db]")
			return
		}
		db := "*"
		if len(parts) == 3 {
			db = parts[2]
		}
		err = c.define(ctx, parts[1], db)

	case "match", "m":
		if len(parts) < 2 || len(parts) > 4 {
			fmt.Println("Usage: match <word> [strategy [db]]")
			return
		}
		strategy, db := ".", "*"
		if len(parts) > 2 {
			strategy = parts[2]
		}
		if len(parts) > 3 {
			db = parts[3]
		}
		err = c.match(ctx, parts[1], strategy, db)

	case "db", "databases":
		err = c.databases(ctx)

	case "strat", "strategies":
		err = c.strategies(ctx)

	case "catalog":
		err = c.catalog(ctx)

	case "info":
		if len(parts) != 2 {
			fmt.Println("Usage: info <db>")
			return
		}
		err = c.info(ctx, parts[1])

	case "server":
		err = c.serverInfo(ctx)

	case "status":
		err = c.status(ctx)

	case "quit", "exit", "q":
		os.Exit(0)

	default:
		fmt.Printf("Unknown command: %s\n", parts[0])
		return
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func (c *client) define(ctx context.Context, word, db string) error {
	return c.withSession(ctx, word, func(sess *dict.Session) error {
		defs, err := sess.Define(ctx, word, db)
		if err != nil {
			return err
		}
		fmt.Printf("%d definitions found\n", len(defs))
		for _, d := range defs {
			fmt.Printf("\nFrom %s [%s]:\n\n%s\n", d.Database, d.Description, d.Text())
		}
		return nil
	})
}

func (c *client) match(ctx context.Context, word, strategy, db string) error {
	return c.withSession(ctx, word, func(sess *dict.Session) error {
		matches, err := sess.Match(ctx, word, strategy, db)
		if err != nil {
			return err
		}
		fmt.Printf("%d matches found\n", matches.Count())
		for _, g := range matches {
			fmt.Printf("%s: %s\n", g.Database, strings.Join(g.Words, ", "))
		}
		return nil
	})
}

func (c *client) databases(ctx context.Context) error {
	return c.withSession(ctx, "", func(sess *dict.Session) error {
		dbs, err := sess.Databases(ctx)
		if err != nil {
			return err
		}
		for _, db := range dbs {
			fmt.Printf("%-16s %s\n", db.Name, db.Description)
		}
		return nil
	})
}

func (c *client) strategies(ctx context.Context) error {
	return c.withSession(ctx, "", func(sess *dict.Session) error {
		strats, err := sess.Strategies(ctx)
		if err != nil {
			return err
		}
		for _, s := range strats {
			fmt.Printf("%-16s %s\n", s.Name, s.Description)
		}
		return nil
	})
}

// catalog fetches databases and strategies in one pipelined batch.
func (c *client) catalog(ctx context.Context) error {
	return c.withSession(ctx, "", func(sess *dict.Session) error {
		results, err := sess.Pipeline(ctx, func() error {
			if _, err := sess.Databases(ctx); err != nil {
				return err
			}
			_, err := sess.Strategies(ctx)
			return err
		})
		if err != nil {
			return err
		}

		for _, res := range results {
			switch items := res.(type) {
			case []dict.MetaData:
				for _, item := range items {
					fmt.Printf("%-16s %s\n", item.Name, item.Description)
				}
				fmt.Println()
			}
		}
		return nil
	})
}

func (c *client) info(ctx context.Context, db string) error {
	return c.withSession(ctx, "", func(sess *dict.Session) error {
		text, err := sess.Info(ctx, db)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	})
}

func (c *client) serverInfo(ctx context.Context) error {
	return c.withSession(ctx, "", func(sess *dict.Session) error {
		text, err := sess.Server(ctx)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	})
}

func (c *client) status(ctx context.Context) error {
	return c.withSession(ctx, "", func(sess *dict.Session) error {
		text, err := sess.Status(ctx)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	})
}
