package dict_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/pior/dict"
	"github.com/pior/dict/protocol"
)

func Example() {
	ctx := context.Background()

	sess, err := dict.Dial(ctx, "dict.org")
	if err != nil {
		log.Fatal(err)
	}
	defer sess.Close()

	defs, err := sess.Define(ctx, "golang", "*")
	if errors.Is(err, protocol.ErrNoMatch) {
		fmt.Println("no definition found")
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	for _, d := range defs {
		fmt.Printf("From %s:\n%s\n", d.Database, d.Text())
	}

	sess.Quit(ctx)
}

func ExampleSession_Pipeline() {
	ctx := context.Background()

	sess, err := dict.Dial(ctx, "dict.org")
	if err != nil {
		log.Fatal(err)
	}
	defer sess.Close()

	// Both requests go out in a single write; results come back in order.
	results, err := sess.Pipeline(ctx, func() error {
		if _, err := sess.Databases(ctx); err != nil {
			return err
		}
		_, err := sess.Strategies(ctx)
		return err
	})
	if err != nil {
		log.Fatal(err)
	}

	databases := results[0].([]dict.MetaData)
	strategies := results[1].([]dict.MetaData)
	fmt.Println(len(databases), len(strategies))
}
