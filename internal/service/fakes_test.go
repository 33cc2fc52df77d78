package service

import (
	"github.com/lshigami/Talapoin/internal/model"
	"gorm.io/gorm"
)

// In-memory repository fakes used across the service tests.

type fakeUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*model.User)}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByIDs(ids []uint) ([]model.User, error) {
	var out []model.User
	seen := make(map[uint]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if user, ok := r.users[id]; ok {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for i := uint(1); i <= r.nextID; i++ {
		if user, ok := r.users[i]; ok {
			out = append(out, *user)
		}
	}
	return out, nil
}

type fakeQuestionRepo struct {
	questions map[uint]*model.Question
	byTrivia  map[uint][]uint // trivia id -> question ids in link order
	nextID    uint
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{
		questions: make(map[uint]*model.Question),
		byTrivia:  make(map[uint][]uint),
	}
}

func (r *fakeQuestionRepo) Create(question *model.Question) error {
	r.nextID++
	question.ID = r.nextID
	stored := *question
	r.questions[question.ID] = &stored
	return nil
}

func (r *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	question, ok := r.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return question, nil
}

func (r *fakeQuestionRepo) FindByIDs(ids []uint) ([]model.Question, error) {
	var out []model.Question
	seen := make(map[uint]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if question, ok := r.questions[id]; ok {
			out = append(out, *question)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) FindByTriviaID(triviaID uint) ([]model.Question, error) {
	var out []model.Question
	for _, id := range r.byTrivia[triviaID] {
		if question, ok := r.questions[id]; ok {
			out = append(out, *question)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) FindAll() ([]model.Question, error) {
	out := make([]model.Question, 0, len(r.questions))
	for i := uint(1); i <= r.nextID; i++ {
		if question, ok := r.questions[i]; ok {
			out = append(out, *question)
		}
	}
	return out, nil
}

type fakeTriviaRepo struct {
	trivias       map[uint]*model.Trivia
	questionLinks []model.TriviaQuestion
	userLinks     []model.TriviaUser
	nextID        uint
}

func newFakeTriviaRepo() *fakeTriviaRepo {
	return &fakeTriviaRepo{trivias: make(map[uint]*model.Trivia)}
}

func (r *fakeTriviaRepo) CreateWithLinks(trivia *model.Trivia, questionIDs, userIDs []uint) error {
	r.nextID++
	trivia.ID = r.nextID
	stored := *trivia
	r.trivias[trivia.ID] = &stored
	for _, questionID := range questionIDs {
		r.questionLinks = append(r.questionLinks, model.TriviaQuestion{TriviaID: trivia.ID, QuestionID: questionID})
	}
	for _, userID := range userIDs {
		r.userLinks = append(r.userLinks, model.TriviaUser{TriviaID: trivia.ID, UserID: userID})
	}
	return nil
}

func (r *fakeTriviaRepo) FindByID(id uint) (*model.Trivia, error) {
	trivia, ok := r.trivias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return trivia, nil
}

func (r *fakeTriviaRepo) FindAll() ([]model.Trivia, error) {
	out := make([]model.Trivia, 0, len(r.trivias))
	for i := uint(1); i <= r.nextID; i++ {
		if trivia, ok := r.trivias[i]; ok {
			out = append(out, *trivia)
		}
	}
	return out, nil
}

func (r *fakeTriviaRepo) Delete(id uint) error {
	delete(r.trivias, id)
	questionLinks := r.questionLinks[:0]
	for _, link := range r.questionLinks {
		if link.TriviaID != id {
			questionLinks = append(questionLinks, link)
		}
	}
	r.questionLinks = questionLinks
	userLinks := r.userLinks[:0]
	for _, link := range r.userLinks {
		if link.TriviaID != id {
			userLinks = append(userLinks, link)
		}
	}
	r.userLinks = userLinks
	return nil
}

func (r *fakeTriviaRepo) UserAssigned(triviaID, userID uint) (bool, error) {
	for _, link := range r.userLinks {
		if link.TriviaID == triviaID && link.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTriviaRepo) QuestionAssigned(triviaID, questionID uint) (bool, error) {
	for _, link := range r.questionLinks {
		if link.TriviaID == triviaID && link.QuestionID == questionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTriviaRepo) FindUserLinks(triviaID uint) ([]model.TriviaUser, error) {
	var out []model.TriviaUser
	for _, link := range r.userLinks {
		if link.TriviaID == triviaID {
			out = append(out, link)
		}
	}
	return out, nil
}

func (r *fakeTriviaRepo) FindQuestionLinks(triviaID uint) ([]model.TriviaQuestion, error) {
	var out []model.TriviaQuestion
	for _, link := range r.questionLinks {
		if link.TriviaID == triviaID {
			out = append(out, link)
		}
	}
	return out, nil
}

type fakeParticipationRepo struct {
	participations []model.Participation
	nextID         uint
}

func newFakeParticipationRepo() *fakeParticipationRepo {
	return &fakeParticipationRepo{}
}

func (r *fakeParticipationRepo) Create(participation *model.Participation) error {
	r.nextID++
	participation.ID = r.nextID
	r.participations = append(r.participations, *participation)
	return nil
}

func (r *fakeParticipationRepo) Exists(userID, triviaID, questionID uint) (bool, error) {
	for _, p := range r.participations {
		if p.UserID == userID && p.TriviaID == triviaID && p.QuestionID == questionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeParticipationRepo) FindByTrivia(triviaID uint) ([]model.Participation, error) {
	var out []model.Participation
	for _, p := range r.participations {
		if p.TriviaID == triviaID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeParticipationRepo) FindByTriviaAndUser(triviaID, userID uint) ([]model.Participation, error) {
	var out []model.Participation
	for _, p := range r.participations {
		if p.TriviaID == triviaID && p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}
