// Seeds a local database with demo users, groups, posts and follow edges.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/d60-Lab/microblog/config"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/pkg/database"
	"github.com/d60-Lab/microblog/pkg/logger"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func mustDo(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	cfg := must(config.Load())
	mustDo(logger.Init(cfg.Log.Level))
	db := must(database.InitDB(cfg))
	ctx := context.Background()

	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)
	followRepo := repository.NewFollowRepository(db)

	alice := must(userRepo.Create(ctx, "alice", "alice@example.com", "x"))
	bob := must(userRepo.Create(ctx, "bob", "bob@example.com", "x"))
	carol := must(userRepo.Create(ctx, "carol", "carol@example.com", "x"))

	golang := must(groupRepo.Create(ctx, "Go", "go", "All things Go"))
	must(groupRepo.Create(ctx, "Random", "random", "Everything else"))

	for i := 0; i < 13; i++ {
		var groupID *string
		if i%2 == 0 {
			groupID = &golang.ID
		}
		must(postRepo.Create(ctx, alice.ID, fmt.Sprintf("post %d from alice", i), groupID, ""))
		time.Sleep(2 * time.Millisecond) // keep created_at ordering distinct
	}
	must(postRepo.Create(ctx, bob.ID, "hello from bob", nil, ""))

	mustDo(followRepo.Create(ctx, carol.ID, alice.ID))
	mustDo(followRepo.Create(ctx, carol.ID, bob.ID))

	fmt.Println("seeded: 3 users, 2 groups, 14 posts, 2 follows")
}
