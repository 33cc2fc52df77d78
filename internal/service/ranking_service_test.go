package service

import (
	"testing"

	"github.com/lshigami/Talapoin/internal/apperror"
	"github.com/lshigami/Talapoin/internal/model"
)

// newRankingFixture assigns three users to trivia 1 in order Alice, Bob, Carol.
func newRankingFixture(t *testing.T) (RankingService, *fakeParticipationRepo) {
	t.Helper()

	userRepo := newFakeUserRepo()
	triviaRepo := newFakeTriviaRepo()
	participationRepo := newFakeParticipationRepo()

	userRepo.Create(&model.User{Name: "Alice", Email: "alice@example.com"})
	userRepo.Create(&model.User{Name: "Bob", Email: "bob@example.com"})
	userRepo.Create(&model.User{Name: "Carol", Email: "carol@example.com"})

	trivia := model.Trivia{Name: "HR Trivia"}
	triviaRepo.CreateWithLinks(&trivia, nil, []uint{1, 2, 3})

	return NewRankingService(triviaRepo, userRepo, participationRepo), participationRepo
}

func record(repo *fakeParticipationRepo, userID, questionID uint, points int) {
	repo.Create(&model.Participation{
		UserID:        userID,
		TriviaID:      1,
		QuestionID:    questionID,
		AnswerGiven:   "A",
		IsCorrect:     points > 0,
		PointsAwarded: points,
	})
}

func TestRankingOrdersByTotalDescending(t *testing.T) {
	svc, repo := newRankingFixture(t)
	record(repo, 1, 1, 1)
	record(repo, 2, 1, 3)
	record(repo, 2, 2, 2)
	record(repo, 3, 1, 2)

	resp, err := svc.GetRanking(1)
	if err != nil {
		t.Fatalf("ranking failed: %v", err)
	}
	if len(resp.Ranking) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(resp.Ranking))
	}
	if resp.Ranking[0].UserID != 2 || resp.Ranking[0].TotalPoints != 5 {
		t.Fatalf("expected Bob first with 5 points, got %+v", resp.Ranking[0])
	}
	for i, entry := range resp.Ranking {
		if entry.Position != i+1 {
			t.Fatalf("expected position %d, got %d", i+1, entry.Position)
		}
	}
}

func TestRankingTiesKeepAssignmentOrder(t *testing.T) {
	svc, repo := newRankingFixture(t)
	// Alice and Bob tie on 5, Carol trails with 3.
	record(repo, 1, 1, 3)
	record(repo, 1, 2, 2)
	record(repo, 2, 1, 3)
	record(repo, 2, 2, 2)
	record(repo, 3, 1, 3)

	resp, err := svc.GetRanking(1)
	if err != nil {
		t.Fatalf("ranking failed: %v", err)
	}

	positions := make(map[int]bool)
	for _, entry := range resp.Ranking {
		if positions[entry.Position] {
			t.Fatalf("duplicate position %d", entry.Position)
		}
		positions[entry.Position] = true
	}
	if resp.Ranking[0].UserID != 1 || resp.Ranking[1].UserID != 2 {
		t.Fatalf("tied users must keep assignment order, got %+v", resp.Ranking)
	}
	if resp.Ranking[0].Position != 1 || resp.Ranking[1].Position != 2 || resp.Ranking[2].Position != 3 {
		t.Fatalf("ties must still get distinct consecutive positions, got %+v", resp.Ranking)
	}
}

func TestRankingIncludesUsersWithoutAnswers(t *testing.T) {
	svc, repo := newRankingFixture(t)
	record(repo, 2, 1, 1)

	resp, err := svc.GetRanking(1)
	if err != nil {
		t.Fatalf("ranking failed: %v", err)
	}
	if len(resp.Ranking) != 3 {
		t.Fatalf("every assigned user must appear, got %d entries", len(resp.Ranking))
	}
	last := resp.Ranking[len(resp.Ranking)-1]
	if last.TotalPoints != 0 {
		t.Fatalf("silent users must total 0, got %+v", last)
	}
}

func TestRankingTriviaNotFound(t *testing.T) {
	svc, _ := newRankingFixture(t)

	_, err := svc.GetRanking(99)
	wantKind(t, err, apperror.KindNotFound)
}

func TestUserScoreTotals(t *testing.T) {
	svc, repo := newRankingFixture(t)
	record(repo, 1, 1, 3)
	record(repo, 1, 2, 0)
	record(repo, 1, 3, 2)

	resp, err := svc.GetUserScore(1, 1)
	if err != nil {
		t.Fatalf("user score failed: %v", err)
	}
	if resp.TotalPoints != 5 {
		t.Fatalf("expected 5 total points, got %d", resp.TotalPoints)
	}
	if resp.TotalAnswered != 3 {
		t.Fatalf("expected 3 answered, got %d", resp.TotalAnswered)
	}
	if resp.TotalCorrect != 2 {
		t.Fatalf("expected 2 correct, got %d", resp.TotalCorrect)
	}
}

func TestUserScoreUnknownUserIsZero(t *testing.T) {
	svc, _ := newRankingFixture(t)

	resp, err := svc.GetUserScore(1, 404)
	if err != nil {
		t.Fatalf("user score failed: %v", err)
	}
	if resp.TotalPoints != 0 || resp.TotalAnswered != 0 || resp.TotalCorrect != 0 {
		t.Fatalf("expected zero totals, got %+v", resp)
	}
}
