package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/combat-api/internal/content"
	"github.com/KirkDiggler/combat-api/internal/dice"
	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/orchestrators/combat"
	"github.com/KirkDiggler/combat-api/internal/orchestrators/progression"
	"github.com/KirkDiggler/combat-api/internal/pkg/idgen"
	"github.com/KirkDiggler/combat-api/internal/redis"
	"github.com/KirkDiggler/combat-api/internal/repositories/character"
	"github.com/KirkDiggler/combat-api/internal/repositories/codex"
)

// simConfig is loaded from the environment (optionally via .env).
type simConfig struct {
	// RedisAddr enables the Redis character repository; empty falls back
	// to in-memory storage.
	RedisAddr string `env:"REDIS_ADDR"`
	// CodexDBPath enables SQLite codex tracking; empty disables it.
	CodexDBPath string `env:"CODEX_DB_PATH"`
	// Seed pins the dice sequence; zero means randomly seeded.
	Seed uint64 `env:"SEED"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

var (
	monsterID string
	maxRounds int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scripted battle",
	Long:  `Create a character, spawn a monster, and resolve a battle turn by turn through the combat and progression engines.`,
	RunE:  runBattle,
}

func init() {
	runCmd.Flags().StringVar(&monsterID, "monster", "goblin", "monster template to fight")
	runCmd.Flags().IntVar(&maxRounds, "max-rounds", 50, "round limit before the battle is called off")
}

func runBattle(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var cfg simConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	slog.SetLogLoggerLevel(level)

	registry := content.New()
	if err := registry.Validate(); err != nil {
		return fmt.Errorf("content registry is broken: %w", err)
	}

	var roller dice.Roller
	if cfg.Seed != 0 {
		roller = dice.NewSeededRoller(cfg.Seed)
		slog.Info("using seeded dice", "seed", cfg.Seed)
	} else {
		roller = dice.NewRoller()
	}
	engine := dice.NewEngine(roller)

	characterRepo, err := buildCharacterRepo(&cfg)
	if err != nil {
		return err
	}

	var codexStore codex.Repository
	if cfg.CodexDBPath != "" {
		store, err := codex.Open(cfg.CodexDBPath)
		if err != nil {
			return fmt.Errorf("failed to open codex: %w", err)
		}
		defer func() { _ = store.Close() }()
		codexStore = store
	}

	progressionSvc, err := progression.NewOrchestrator(&progression.Config{
		Dice:          engine,
		Content:       registry,
		CharacterRepo: characterRepo,
		IDGenerator:   idgen.NewUUID("char"),
	})
	if err != nil {
		return err
	}

	combatSvc, err := combat.NewOrchestrator(&combat.Config{
		Dice:    engine,
		Content: registry,
		Codex:   codexStore,
	})
	if err != nil {
		return err
	}

	created, err := progressionSvc.CreateCharacter(ctx, &progression.CreateCharacterInput{
		PlayerID: "sim",
		Name:     "Brakka Ironjaw",
		ClassID:  content.ClassWarrior,
		BaseScores: entities.AbilityScores{
			Strength:     15,
			Dexterity:    13,
			Constitution: 14,
			Intelligence: 8,
			Wisdom:       12,
			Charisma:     10,
		},
	})
	if err != nil {
		return err
	}
	if !created.Success {
		return fmt.Errorf("character creation refused: %s", created.Message)
	}
	player := created.Player
	slog.Info("character created",
		"id", player.ID,
		"class", player.ClassID,
		"hp", player.MaxHP,
		"mp", player.MaxMP,
		"gold", player.Gold,
	)

	monster, ok := registry.SpawnMonster(monsterID)
	if !ok {
		return fmt.Errorf("unknown monster %q", monsterID)
	}
	if codexStore != nil {
		if err := codexStore.RecordEncounter(ctx, monster.ID); err != nil {
			slog.Warn("failed to record encounter", "error", err)
		}
	}
	slog.Info("battle starts", "monster", monster.Name, "hp", monster.HP, "ac", monster.ArmorClass)

	won, err := fight(ctx, combatSvc, player, monster)
	if err != nil {
		return err
	}

	// The combat engine mutates the in-memory character; store the
	// battle-worn state before progression reloads it.
	if _, err := characterRepo.Update(ctx, character.UpdateInput{Player: player}); err != nil {
		return fmt.Errorf("failed to persist battle outcome: %w", err)
	}

	if !won {
		slog.Info("battle lost", "monster", monster.Name, "monster_hp", monster.HP)
		return nil
	}

	// Victory: award XP proportional to the monster and level up
	awarded, err := progressionSvc.AwardXP(ctx, &progression.AwardXPInput{
		CharacterID: player.ID,
		Amount:      monster.MaxHP * 20,
	})
	if err != nil {
		return err
	}
	slog.Info("experience awarded",
		"xp", awarded.Player.XP,
		"pending_level_ups", awarded.PendingLevelUps,
	)

	leveled, err := progressionSvc.ProcessPendingLevelUps(ctx, &progression.ProcessPendingLevelUpsInput{
		CharacterID: player.ID,
	})
	if err != nil {
		return err
	}
	if leveled.Success && leveled.LevelsApplied > 0 {
		slog.Info("leveled up",
			"level", leveled.Player.Level,
			"hp_gained", leveled.HPGained,
			"stat_points", leveled.StatPointsGranted,
			"learned_abilities", leveled.LearnedAbilities,
			"learned_talents", leveled.LearnedTalents,
		)
	}

	return nil
}

func buildCharacterRepo(cfg *simConfig) (character.Repository, error) {
	if cfg.RedisAddr == "" {
		slog.Info("using in-memory character storage")
		return character.NewInMemory(), nil
	}

	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	slog.Info("using redis character storage", "addr", cfg.RedisAddr)
	return character.NewRedis(&character.RedisConfig{Client: client})
}

// fight resolves the battle turn by turn. Returns true when the monster
// falls, false when the player does or the round limit is reached.
func fight(ctx context.Context, svc combat.Service, player *entities.PlayerState, monster *entities.Monster) (bool, error) {
	initiative, err := svc.RollInitiative(ctx, &combat.RollInitiativeInput{
		PlayerDexModifier: dice.AbilityModifier(player.Abilities.Dexterity),
		MonsterBonus:      monster.AttackBonus,
	})
	if err != nil {
		return false, err
	}
	slog.Info("initiative",
		"player", initiative.PlayerRoll.Total,
		"monster", initiative.MonsterRoll.Total,
		"player_first", initiative.PlayerFirst,
	)

	playerTurn := initiative.PlayerFirst
	for round := 1; round <= maxRounds; round++ {
		if playerTurn {
			out, err := svc.PlayerAttack(ctx, &combat.PlayerAttackInput{Player: player, Monster: monster})
			if err != nil {
				return false, err
			}
			slog.Info(out.Message, "round", round, "roll", out.AttackRoll.Total, "monster_hp", monster.HP)
			if out.MonsterDefeated {
				return true, nil
			}
		} else {
			out, err := monsterAct(ctx, svc, player, monster, round)
			if err != nil {
				return false, err
			}
			slog.Info(out.Message, "round", round, "player_hp", player.HP)
			if out.PlayerDefeated {
				return false, nil
			}
		}
		playerTurn = !playerTurn
	}

	slog.Info("round limit reached, calling the battle off")
	return false, nil
}

// monsterAct picks the monster's action: a special ability every third
// round when it has one, a melee attack otherwise.
func monsterAct(ctx context.Context, svc combat.Service, player *entities.PlayerState, monster *entities.Monster, round int) (*combat.AttackResult, error) {
	if len(monster.SpecialAbilities) > 0 && round%3 == 0 {
		out, err := svc.MonsterUseAbility(ctx, &combat.MonsterUseAbilityInput{
			Monster:   monster,
			AbilityID: monster.SpecialAbilities[0].ID,
			Player:    player,
		})
		if err != nil {
			return nil, err
		}
		return &out.AttackResult, nil
	}

	out, err := svc.MonsterAttack(ctx, &combat.MonsterAttackInput{Monster: monster, Player: player})
	if err != nil {
		return nil, err
	}
	return &out.AttackResult, nil
}
