package progression_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/combat-api/internal/content"
	"github.com/KirkDiggler/combat-api/internal/dice"
	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/orchestrators/progression"
	"github.com/KirkDiggler/combat-api/internal/pkg/idgen"
	"github.com/KirkDiggler/combat-api/internal/repositories/character"
	charactermock "github.com/KirkDiggler/combat-api/internal/repositories/character/mock"
	"github.com/KirkDiggler/combat-api/internal/testutils"
)

type ProgressionTestSuite struct {
	suite.Suite
	registry *content.Registry
	repo     character.Repository
	ctx      context.Context
}

func (s *ProgressionTestSuite) SetupTest() {
	s.registry = content.New()
	s.repo = character.NewInMemory()
	s.ctx = context.Background()
}

// newService builds an orchestrator whose dice replay the given rolls.
func (s *ProgressionTestSuite) newService(rolls ...int) progression.Service {
	svc, err := progression.NewOrchestrator(&progression.Config{
		Dice:          dice.NewEngine(testutils.NewScriptedRoller(rolls...)),
		Content:       s.registry,
		CharacterRepo: s.repo,
		IDGenerator:   idgen.NewSequential("char"),
	})
	s.Require().NoError(err)
	return svc
}

func (s *ProgressionTestSuite) seedCharacter(player *entities.PlayerState) {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Player: player})
	s.Require().NoError(err)
}

func validScores() entities.AbilityScores {
	// 9+5+7+0+4+2 = 27
	return entities.AbilityScores{
		Strength:     15,
		Dexterity:    13,
		Constitution: 14,
		Intelligence: 8,
		Wisdom:       12,
		Charisma:     10,
	}
}

func (s *ProgressionTestSuite) TestCreateCharacter_Warrior() {
	svc := s.newService(3, 4, 5) // 3d6 starting gold

	out, err := svc.CreateCharacter(s.ctx, &progression.CreateCharacterInput{
		PlayerID:   "player-1",
		Name:       "Brakka",
		ClassID:    content.ClassWarrior,
		BaseScores: validScores(),
	})
	s.Require().NoError(err)
	s.Require().True(out.Success, out.Message)

	player := out.Player
	s.Equal("char_1", player.ID)
	s.Equal(1, player.Level)

	// +2 STR / +1 CON class boosts on top of the base scores
	s.Equal(17, player.Abilities.Strength)
	s.Equal(15, player.Abilities.Constitution)

	// d10 hit die + CON mod 2, plus the toughness talent's +4
	s.Equal(16, player.MaxHP)
	s.Equal(16, player.HP)
	// 2 base - 1 INT mod
	s.Equal(1, player.MaxMP)

	s.Equal("rusty_sword", player.WeaponID)
	s.Equal(12, player.Gold)
	s.Equal([]string{"power_strike"}, player.KnownAbilities)
	s.Equal([]string{"toughness"}, player.KnownTalents)
	s.Empty(player.KnownSpells)

	persisted, err := s.repo.Get(s.ctx, character.GetInput{ID: player.ID})
	s.Require().NoError(err)
	s.Equal(player.MaxHP, persisted.Player.MaxHP)
}

func (s *ProgressionTestSuite) TestCreateCharacter_MageLearnsLevelOneSpells() {
	svc := s.newService(2, 3)

	out, err := svc.CreateCharacter(s.ctx, &progression.CreateCharacterInput{
		PlayerID:   "player-1",
		Name:       "Sellis",
		ClassID:    content.ClassMage,
		BaseScores: validScores(),
	})
	s.Require().NoError(err)
	s.Require().True(out.Success, out.Message)

	s.Contains(out.Player.KnownSpells, "magic_missile")
	s.Contains(out.Player.KnownSpells, "arcane_light")
	s.NotContains(out.Player.KnownSpells, "fireball")
}

func (s *ProgressionTestSuite) TestCreateCharacter_InvalidPointBuy() {
	svc := s.newService()

	out, err := svc.CreateCharacter(s.ctx, &progression.CreateCharacterInput{
		PlayerID: "player-1",
		Name:     "Brakka",
		ClassID:  content.ClassWarrior,
		BaseScores: entities.AbilityScores{
			Strength: 8, Dexterity: 8, Constitution: 8,
			Intelligence: 8, Wisdom: 8, Charisma: 8,
		},
	})
	s.Require().NoError(err)
	s.False(out.Success)
	s.NotEmpty(out.Message)

	list, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Empty(list.Players)
}

func (s *ProgressionTestSuite) TestCreateCharacter_UnknownClass() {
	svc := s.newService()

	out, err := svc.CreateCharacter(s.ctx, &progression.CreateCharacterInput{
		PlayerID:   "player-1",
		Name:       "Brakka",
		ClassID:    "bard",
		BaseScores: validScores(),
	})
	s.Require().NoError(err)
	s.False(out.Success)
}

func (s *ProgressionTestSuite) TestCreateCharacter_MissingFields() {
	svc := s.newService()

	_, err := svc.CreateCharacter(s.ctx, &progression.CreateCharacterInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ProgressionTestSuite) TestAwardXP_AccumulatesPendingLevels() {
	s.seedCharacter(testutils.CreateTestWarrior("player-1"))
	svc := s.newService()

	out, err := svc.AwardXP(s.ctx, &progression.AwardXPInput{CharacterID: "char-test-001", Amount: 450})
	s.Require().NoError(err)
	s.Equal(450, out.Player.XP)
	s.Equal(1, out.LevelsEarned) // crossed 400
	s.Equal(1, out.PendingLevelUps)
	s.Equal(1, out.Player.Level) // not applied yet

	out, err = svc.AwardXP(s.ctx, &progression.AwardXPInput{CharacterID: "char-test-001", Amount: 1200})
	s.Require().NoError(err)
	s.Equal(1650, out.Player.XP)
	s.Equal(2, out.LevelsEarned) // crossed 900 and 1600
	s.Equal(3, out.PendingLevelUps)
}

func (s *ProgressionTestSuite) TestAwardXP_ZeroAmountIsFine() {
	s.seedCharacter(testutils.CreateTestWarrior("player-1"))
	svc := s.newService()

	out, err := svc.AwardXP(s.ctx, &progression.AwardXPInput{CharacterID: "char-test-001", Amount: 0})
	s.Require().NoError(err)
	s.Equal(0, out.LevelsEarned)
}

func (s *ProgressionTestSuite) TestAwardXP_NegativeAmount() {
	svc := s.newService()

	_, err := svc.AwardXP(s.ctx, &progression.AwardXPInput{CharacterID: "char-test-001", Amount: -5})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ProgressionTestSuite) TestAwardXP_CharacterNotFound() {
	svc := s.newService()

	_, err := svc.AwardXP(s.ctx, &progression.AwardXPInput{CharacterID: "missing", Amount: 100})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *ProgressionTestSuite) TestProcessPendingLevelUps_OneToFour() {
	warrior := testutils.CreateTestWarrior("player-1")
	warrior.XP = 1650
	warrior.PendingLevelUps = 3
	s.seedCharacter(warrior)
	svc := s.newService(7, 5, 9) // hit die rolls, one per level

	out, err := svc.ProcessPendingLevelUps(s.ctx, &progression.ProcessPendingLevelUpsInput{CharacterID: warrior.ID})
	s.Require().NoError(err)
	s.Require().True(out.Success, out.Message)

	player := out.Player
	s.Equal(4, player.Level)
	s.Equal(0, player.PendingLevelUps)
	s.Equal(3, out.LevelsApplied)

	// Each level: rolled d10 + CON mod 2 = 9/7/11 HP, max(1, 2-1) = 1 MP.
	// Toughness (learned at the first level-up) adds 4 more HP.
	s.Equal(12+9+7+11+4, player.MaxHP)
	s.Equal(player.MaxHP, player.HP)
	s.Equal(3+3, player.MaxMP)
	s.Equal(31, out.HPGained)
	s.Equal(3, out.MPGained)

	// Level 4 is an ASI level
	s.Equal(2, out.StatPointsGranted)
	s.Equal(2, player.PendingStatPoints)

	s.Equal([]string{"power_strike", "second_wind", "intimidate"}, out.LearnedAbilities)
	s.Equal([]string{"toughness", "two_weapon_fighting", "iron_skin", "weapon_master"}, out.LearnedTalents)
	s.Empty(out.LearnedSpells)
}

func (s *ProgressionTestSuite) TestProcessPendingLevelUps_RollsHitDie() {
	warrior := testutils.CreateTestWarrior("player-1")
	warrior.PendingLevelUps = 1
	warrior.KnownTalents = []string{"toughness", "two_weapon_fighting"}
	s.seedCharacter(warrior)
	svc := s.newService(1) // minimum hit die roll

	out, err := svc.ProcessPendingLevelUps(s.ctx, &progression.ProcessPendingLevelUpsInput{CharacterID: warrior.ID})
	s.Require().NoError(err)
	s.Require().True(out.Success, out.Message)

	// The hit die is rolled, not taken at face value: 1 + CON mod 2.
	s.Equal(3, out.HPGained)
	s.Equal(15, out.Player.MaxHP)
	s.Equal(2, out.Player.Level)
}

func (s *ProgressionTestSuite) TestProcessPendingLevelUps_IdempotentAtZero() {
	warrior := testutils.CreateTestWarrior("player-1")
	s.seedCharacter(warrior)
	svc := s.newService()

	out, err := svc.ProcessPendingLevelUps(s.ctx, &progression.ProcessPendingLevelUpsInput{CharacterID: warrior.ID})
	s.Require().NoError(err)
	s.True(out.Success)
	s.Equal(0, out.LevelsApplied)
	s.Equal(1, out.Player.Level)
	s.Empty(out.LearnedTalents)
}

func (s *ProgressionTestSuite) TestAllocateStatPoint_ConstitutionRetroactive() {
	warrior := testutils.CreateTestWarrior("player-1")
	warrior.Level = 5
	warrior.PendingStatPoints = 2
	warrior.MaxHP = 52
	warrior.HP = 52
	s.seedCharacter(warrior)
	svc := s.newService()

	// Every constitution point is retroactive: +level max HP, whether or
	// not the modifier moved.
	out, err := svc.AllocateStatPoint(s.ctx, &progression.AllocateStatPointInput{
		CharacterID: warrior.ID,
		Stat:        entities.StatConstitution,
	})
	s.Require().NoError(err)
	s.Require().True(out.Success, out.Message)
	s.Equal(15, out.NewScore)
	s.Equal(5, out.MaxHPGained)
	s.Equal(57, out.Player.MaxHP)
	s.Equal(57, out.Player.HP)
	s.Equal(1, out.PointsRemaining)

	out, err = svc.AllocateStatPoint(s.ctx, &progression.AllocateStatPointInput{
		CharacterID: warrior.ID,
		Stat:        entities.StatConstitution,
	})
	s.Require().NoError(err)
	s.True(out.Success)
	s.Equal(16, out.NewScore)
	s.Equal(5, out.MaxHPGained)
	s.Equal(62, out.Player.MaxHP)
	s.Equal(0, out.PointsRemaining)

	// Points exhausted
	out, err = svc.AllocateStatPoint(s.ctx, &progression.AllocateStatPointInput{
		CharacterID: warrior.ID,
		Stat:        entities.StatConstitution,
	})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal("no stat points available", out.Message)
}

func (s *ProgressionTestSuite) TestAllocateStatPoint_IntelligenceRetroactive() {
	warrior := testutils.CreateTestWarrior("player-1")
	warrior.Level = 3
	warrior.PendingStatPoints = 1
	s.seedCharacter(warrior)
	svc := s.newService()

	out, err := svc.AllocateStatPoint(s.ctx, &progression.AllocateStatPointInput{
		CharacterID: warrior.ID,
		Stat:        entities.StatIntelligence,
	})
	s.Require().NoError(err)
	s.Require().True(out.Success, out.Message)
	s.Equal(3, out.MaxMPGained)
	s.Equal(warrior.MaxMP+3, out.Player.MaxMP)
}

func (s *ProgressionTestSuite) TestAllocateStatPoint_UnknownStat() {
	warrior := testutils.CreateTestWarrior("player-1")
	warrior.PendingStatPoints = 1
	s.seedCharacter(warrior)
	svc := s.newService()

	_, err := svc.AllocateStatPoint(s.ctx, &progression.AllocateStatPointInput{
		CharacterID: warrior.ID,
		Stat:        "luck",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ProgressionTestSuite) TestRest_RecoversHPAndMP() {
	warrior := testutils.CreateTestWarrior("player-1")
	warrior.HP = 5
	warrior.MP = 1
	s.seedCharacter(warrior)
	svc := s.newService(6, 2) // 1d10 hit die, then 1d4 MP

	out, err := svc.Rest(s.ctx, &progression.RestInput{CharacterID: warrior.ID})
	s.Require().NoError(err)
	s.Require().True(out.Success, out.Message)

	// 6 + CON mod 2 = 8, capped at the 7 missing
	s.Equal(7, out.HPRecovered)
	s.Equal(12, out.Player.HP)
	// 2 + 1 = 3, capped at the 2 missing
	s.Equal(2, out.MPRecovered)
	s.Equal(3, out.Player.MP)
	s.Equal(1, out.Player.ShortRestsRemaining)
	s.Nil(out.LevelUps)
}

func (s *ProgressionTestSuite) TestRest_NoRestsRemaining() {
	warrior := testutils.CreateTestWarrior("player-1")
	warrior.HP = 5
	warrior.ShortRestsRemaining = 0
	s.seedCharacter(warrior)
	svc := s.newService()

	out, err := svc.Rest(s.ctx, &progression.RestInput{CharacterID: warrior.ID})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal("no short rests remaining", out.Message)

	persisted, err := s.repo.Get(s.ctx, character.GetInput{ID: warrior.ID})
	s.Require().NoError(err)
	s.Equal(5, persisted.Player.HP)
}

func (s *ProgressionTestSuite) TestRest_AppliesPendingLevelUps() {
	warrior := testutils.CreateTestWarrior("player-1")
	warrior.XP = 400
	warrior.PendingLevelUps = 1
	s.seedCharacter(warrior)
	svc := s.newService(4, 1, 6) // rest HP, rest MP, level-up hit die

	out, err := svc.Rest(s.ctx, &progression.RestInput{CharacterID: warrior.ID})
	s.Require().NoError(err)
	s.Require().True(out.Success, out.Message)
	s.Require().NotNil(out.LevelUps)
	s.Equal(1, out.LevelUps.LevelsApplied)
	s.Equal(2, out.Player.Level)
	s.Equal(0, out.Player.PendingLevelUps)
}

func (s *ProgressionTestSuite) TestValidatePointBuy() {
	svc := s.newService()

	out, err := svc.ValidatePointBuy(s.ctx, &progression.ValidatePointBuyInput{Scores: validScores()})
	s.Require().NoError(err)
	s.True(out.Valid)
	s.Equal(27, out.PointsSpent)

	out, err = svc.ValidatePointBuy(s.ctx, &progression.ValidatePointBuyInput{
		Scores: entities.AbilityScores{
			Strength: 8, Dexterity: 8, Constitution: 8,
			Intelligence: 8, Wisdom: 8, Charisma: 8,
		},
	})
	s.Require().NoError(err)
	s.False(out.Valid)
	s.NotEmpty(out.Message)

	out, err = svc.ValidatePointBuy(s.ctx, &progression.ValidatePointBuyInput{
		Scores: entities.AbilityScores{
			Strength: 18, Dexterity: 13, Constitution: 14,
			Intelligence: 8, Wisdom: 12, Charisma: 10,
		},
	})
	s.Require().NoError(err)
	s.False(out.Valid)
}

func (s *ProgressionTestSuite) TestRepositoryErrorsPropagate() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	mockRepo := charactermock.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Get(gomock.Any(), character.GetInput{ID: "char-1"}).
		Return(nil, errors.Internal("redis unavailable"))

	svc, err := progression.NewOrchestrator(&progression.Config{
		Dice:          dice.NewEngine(testutils.NewScriptedRoller()),
		Content:       s.registry,
		CharacterRepo: mockRepo,
		IDGenerator:   idgen.NewSequential("char"),
	})
	s.Require().NoError(err)

	_, err = svc.AwardXP(s.ctx, &progression.AwardXPInput{CharacterID: "char-1", Amount: 100})
	s.Require().Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
}

func (s *ProgressionTestSuite) TestNewOrchestrator_MissingDependencies() {
	_, err := progression.NewOrchestrator(&progression.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestProgressionTestSuite(t *testing.T) {
	suite.Run(t, new(ProgressionTestSuite))
}
