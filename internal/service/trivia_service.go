//go:generate mockery --name TriviaService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go_vocab_trivia/internal/config"
	"go_vocab_trivia/internal/learning"
	"go_vocab_trivia/internal/locker"
	"go_vocab_trivia/internal/metrics"
	"go_vocab_trivia/internal/middleware"
	"go_vocab_trivia/internal/model"
	"go_vocab_trivia/internal/repository"
	"go_vocab_trivia/internal/trivia"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TriviaService interface {
	EstimatePoolSize(ctx context.Context, userID uuid.UUID, req *model.TriviaFilterRequest) (*model.EstimatePoolResponse, error)
	CreateSession(ctx context.Context, userID uuid.UUID, req *model.CreateSessionRequest) (*model.CreateSessionResponse, error)
	GetNextRound(ctx context.Context, userID, sessionID uuid.UUID) (*model.RoundResponse, error)
	SubmitAnswer(ctx context.Context, userID, sessionID uuid.UUID, req *model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error)
	GetSummary(ctx context.Context, userID, sessionID uuid.UUID) (*model.GameSummaryResponse, error)
}

// TriviaRepositories はトリビアで使うリポジトリの組です
type TriviaRepositories struct {
	Word     repository.WordRepository
	Progress repository.ProgressRepository
	Session  repository.SessionRepository
	Round    repository.RoundRepository
	Activity repository.ActivityRepository
}

type triviaService struct {
	db           *gorm.DB
	wordRepo     repository.WordRepository
	progRepo     repository.ProgressRepository
	sessionRepo  repository.SessionRepository
	roundRepo    repository.RoundRepository
	activityRepo repository.ActivityRepository
	locker       locker.Locker
	cfg          config.TriviaConfig
	rng          trivia.Rand
	now          func() time.Time
}

func NewTriviaService(db *gorm.DB, repos TriviaRepositories, lk locker.Locker, cfg config.TriviaConfig) TriviaService {
	return &triviaService{
		db:           db,
		wordRepo:     repos.Word,
		progRepo:     repos.Progress,
		sessionRepo:  repos.Session,
		roundRepo:    repos.Round,
		activityRepo: repos.Activity,
		locker:       lk,
		cfg:          cfg,
		rng:          trivia.DefaultRand(),
		now:          time.Now,
	}
}

var errSessionNotFound = model.NewAppError("SESSION_NOT_FOUND", "ゲームが見つかりません。", "session_id", model.ErrNotFound)

// resolvePool は出題条件と現在の星評価から候補単語を求めます
func (s *triviaService) resolvePool(ctx context.Context, db *gorm.DB, userID uuid.UUID, criteria model.FilterCriteria) ([]*model.Word, error) {
	words, err := s.wordRepo.FindByCriteria(ctx, db, criteria)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(words))
	for _, w := range words {
		ids = append(ids, w.WordID)
	}
	ratings, err := s.ratings(ctx, db, userID, ids)
	if err != nil {
		return nil, err
	}
	return trivia.EligibleWords(words, ratings, criteria.Stars), nil
}

func (s *triviaService) ratings(ctx context.Context, db *gorm.DB, userID uuid.UUID, wordIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	progresses, err := s.progRepo.FindByUserAndWords(ctx, db, userID, wordIDs)
	if err != nil {
		return nil, err
	}
	m := make(map[uuid.UUID]int, len(progresses))
	for _, p := range progresses {
		m[p.WordID] = p.StarRating
	}
	return m, nil
}

// lockSession はセッション単位のロックを設定のタイムアウト付きで取得します
func (s *triviaService) lockSession(ctx context.Context, sessionID uuid.UUID) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, s.cfg.LockTimeout)
	defer cancel()

	unlock, err := s.locker.Lock(lockCtx, "trivia:session:"+sessionID.String())
	if err != nil {
		if errors.Is(err, locker.ErrLockTimeout) {
			middleware.GetLogger(ctx).Warn("Trivia session is busy", "session_id", sessionID)
			return nil, model.NewAppError("SESSION_BUSY", "同じゲームへの操作が処理中です。しばらくしてから再度お試しください。", "", model.ErrConflict)
		}
		middleware.GetLogger(ctx).Error("Failed to acquire session lock", "error", err, "session_id", sessionID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return unlock, nil
}

// EstimatePoolSize は条件に合う候補単語数を返します
func (s *triviaService) EstimatePoolSize(ctx context.Context, userID uuid.UUID, req *model.TriviaFilterRequest) (*model.EstimatePoolResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	criteria := req.Criteria()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	pool, err := s.resolvePool(ctx, s.db, userID, criteria)
	if err != nil {
		logger.Error("Failed to resolve word pool", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "候補単語の集計に失敗しました。", "", err)
	}
	return &model.EstimatePoolResponse{Count: len(pool)}, nil
}

// CreateSession は候補単語が15語以上ある場合にゲームを作成します
func (s *triviaService) CreateSession(ctx context.Context, userID uuid.UUID, req *model.CreateSessionRequest) (*model.CreateSessionResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	criteria := req.Criteria()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	if req.Lives < 1 || req.Lives > model.UnlimitedLives {
		return nil, model.NewAppError("VALIDATION_ERROR", "ライフは1〜999で指定してください。", "lives", model.ErrInvalidInput)
	}
	lang := req.FeedbackLanguage
	if lang == "" {
		lang = model.FeedbackLanguageHebrew
	}

	var session *model.TriviaGameSession
	var poolSize int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pool, err := s.resolvePool(ctx, tx, userID, criteria)
		if err != nil {
			logger.Error("Failed to resolve word pool", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "候補単語の集計に失敗しました。", "", err)
		}
		poolSize = len(pool)
		if !trivia.HasEnoughWords(poolSize) {
			return model.NewAppError("INSUFFICIENT_POOL",
				fmt.Sprintf("条件に合う単語が%d語しかありません。%d語以上になるよう条件を変更してください。", poolSize, trivia.MinPoolSize),
				"", model.ErrInsufficientPool)
		}

		session = &model.TriviaGameSession{
			SessionID:        uuid.New(),
			UserID:           userID,
			LivesConfigured:  req.Lives,
			Filters:          criteria,
			FeedbackLanguage: lang,
		}
		if err := s.sessionRepo.Create(ctx, tx, session); err != nil {
			logger.Error("Failed to create trivia session", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ゲームの作成に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrInsufficientPool) {
			metrics.InsufficientPool()
			logger.Info("Trivia session rejected: insufficient pool", "pool_size", poolSize)
		}
		return nil, err
	}

	metrics.GameStarted()
	logger.Info("Trivia session created", "session_id", session.SessionID, "pool_size", poolSize, "lives", session.LivesConfigured)
	return &model.CreateSessionResponse{
		SessionID:        session.SessionID,
		Lives:            session.LivesConfigured,
		FeedbackLanguage: session.FeedbackLanguage,
		PoolSize:         poolSize,
	}, nil
}

func (s *triviaService) completedResponse(session *model.TriviaGameSession) *model.RoundResponse {
	return &model.RoundResponse{
		GameCompleted:  true,
		Score:          session.Score,
		LivesRemaining: trivia.LivesRemaining(session.LivesConfigured, session.LivesUsed),
	}
}

func (s *triviaService) roundResponse(session *model.TriviaGameSession, roundNumber int, word *model.Word) *model.RoundResponse {
	resp := &model.RoundResponse{
		RoundNumber: roundNumber,
		TotalRounds: model.TriviaRoundsPerGame,
		Word: &model.RoundWord{
			WordID:          word.WordID,
			Term:            word.Term,
			ExampleSentence: word.ExampleSentence,
		},
		Options:        session.PendingOptions,
		Score:          session.Score,
		LivesRemaining: trivia.LivesRemaining(session.LivesConfigured, session.LivesUsed),
	}
	if s.cfg.RevealCorrectIndex && session.PendingCorrectIndex != nil {
		idx := *session.PendingCorrectIndex
		resp.CorrectIndex = &idx
	}
	return resp
}

// finish はセッションを終了させ、正答率と当日のアクティビティを記録します
func (s *triviaService) finish(ctx context.Context, tx *gorm.DB, session *model.TriviaGameSession, correctRounds, totalRounds int) error {
	now := s.now()
	accuracy := trivia.Accuracy(correctRounds, totalRounds)
	session.EndedAt = &now
	session.Accuracy = &accuracy
	session.ClearPending()

	inc := repository.ActivityIncrement{TriviaGames: 1}
	return s.activityRepo.Upsert(ctx, tx, session.UserID, learning.DayKey(now), inc)
}

// GetNextRound は出題中のラウンドを返します。無ければ新しいラウンドを生成して保存します
func (s *triviaService) GetNextRound(ctx context.Context, userID, sessionID uuid.UUID) (*model.RoundResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "session_id", sessionID)

	unlock, err := s.lockSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var resp *model.RoundResponse
	var exhausted *model.TriviaGameSession
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := s.sessionRepo.FindByID(ctx, tx, userID, sessionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return errSessionNotFound
			}
			logger.Error("Failed to find trivia session", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ゲームの取得に失敗しました。", "", err)
		}
		if session.IsEnded() {
			resp = s.completedResponse(session)
			return nil
		}

		rounds, err := s.roundRepo.FindBySession(ctx, tx, sessionID)
		if err != nil {
			logger.Error("Failed to find trivia rounds", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ラウンドの取得に失敗しました。", "", err)
		}
		roundNumber := trivia.NextRoundNumber(len(rounds))
		if roundNumber > model.TriviaRoundsPerGame {
			resp = s.completedResponse(session)
			return nil
		}

		if session.PendingWordID != nil {
			word, err := s.wordRepo.FindByID(ctx, tx, *session.PendingWordID)
			switch {
			case err == nil:
				resp = s.roundResponse(session, roundNumber, word)
				return nil
			case errors.Is(err, model.ErrNotFound):
				// 出題中の単語がカタログから消えた場合は作り直す
				logger.Warn("Pending word no longer exists, rebuilding round", "word_id", *session.PendingWordID)
				session.ClearPending()
			default:
				logger.Error("Failed to find pending word", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
			}
		}

		pool, err := s.resolvePool(ctx, tx, userID, session.Filters)
		if err != nil {
			logger.Error("Failed to resolve word pool", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "候補単語の集計に失敗しました。", "", err)
		}

		round, ok := trivia.BuildRound(s.rng, pool, trivia.UsedWordIDs(rounds))
		if !ok {
			if len(rounds) > 0 {
				if err := s.finish(ctx, tx, session, trivia.CountCorrect(rounds), len(rounds)); err != nil {
					logger.Error("Failed to finish exhausted session", "error", err)
					return model.NewAppError("INTERNAL_SERVER_ERROR", "ゲームの終了処理に失敗しました。", "", err)
				}
				if err := s.sessionRepo.Update(ctx, tx, session); err != nil {
					return s.sessionUpdateError(ctx, err)
				}
				exhausted = session
			}
			resp = s.completedResponse(session)
			return nil
		}

		wordID := round.Word.WordID
		correctIndex := round.CorrectIndex
		session.PendingWordID = &wordID
		session.PendingOptions = round.Options
		session.PendingCorrectIndex = &correctIndex
		if err := s.sessionRepo.Update(ctx, tx, session); err != nil {
			return s.sessionUpdateError(ctx, err)
		}
		resp = s.roundResponse(session, roundNumber, round.Word)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if exhausted != nil {
		metrics.GameCompleted(metrics.EndReasonExhausted, exhausted.Score)
		logger.Info("Trivia session ended: word pool exhausted", "score", exhausted.Score)
	}
	if !resp.GameCompleted {
		logger.Debug("Serving trivia round", "round_number", resp.RoundNumber, "word_id", resp.Word.WordID)
	}
	return resp, nil
}

func (s *triviaService) sessionUpdateError(ctx context.Context, err error) error {
	if errors.Is(err, model.ErrConflict) {
		return model.NewAppError("SESSION_ENDED", "このゲームは既に終了しています。", "", model.ErrConflict)
	}
	middleware.GetLogger(ctx).Error("Failed to update trivia session", "error", err)
	return model.NewAppError("INTERNAL_SERVER_ERROR", "ゲームの更新に失敗しました。", "", err)
}

// applyMastery は回答結果で (ユーザー, 単語) の星評価を更新します
func (s *triviaService) applyMastery(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID, correct bool, now time.Time) (*model.UserWordProgress, error) {
	progress, err := s.progRepo.FindByUserAndWord(ctx, tx, userID, wordID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		progress = learning.NewProgressFromAnswer(userID, wordID, correct, now)
		if err := s.progRepo.Create(ctx, tx, progress); err != nil {
			return nil, err
		}
		return progress, nil
	}
	learning.ApplyAnswer(progress, correct, now)
	if err := s.progRepo.Update(ctx, tx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// SubmitAnswer は出題中のラウンドへの回答を1トランザクションで記録します。
// 正解位置はサーバー側に保存した値を使い、クライアントが送った値は使いません。
func (s *triviaService) SubmitAnswer(ctx context.Context, userID, sessionID uuid.UUID, req *model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "session_id", sessionID)
	if req.SelectedIndex == nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "selected_index は必須項目です。", "selected_index", model.ErrInvalidInput)
	}
	selected := *req.SelectedIndex

	unlock, err := s.lockSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var resp *model.SubmitAnswerResponse
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := s.sessionRepo.FindByID(ctx, tx, userID, sessionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return errSessionNotFound
			}
			logger.Error("Failed to find trivia session", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ゲームの取得に失敗しました。", "", err)
		}
		if session.IsEnded() {
			return model.NewAppError("SESSION_ENDED", "このゲームは既に終了しています。", "", model.ErrConflict)
		}
		if session.PendingWordID == nil || session.PendingCorrectIndex == nil {
			return model.NewAppError("NO_PENDING_ROUND", "回答できるラウンドがありません。次のラウンドを取得してください。", "", model.ErrConflict)
		}
		if *session.PendingWordID != req.WordID {
			logger.Warn("Answer for a word that is not being asked", "word_id", req.WordID, "pending_word_id", *session.PendingWordID)
			return model.NewAppError("ROUND_MISMATCH", "出題中の単語と一致しません。", "word_id", model.ErrConflict)
		}
		if req.CorrectIndex != nil && *req.CorrectIndex != *session.PendingCorrectIndex {
			logger.Debug("Ignoring client supplied correct index", "client_correct_index", *req.CorrectIndex)
		}

		rounds, err := s.roundRepo.FindBySession(ctx, tx, sessionID)
		if err != nil {
			logger.Error("Failed to find trivia rounds", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ラウンドの取得に失敗しました。", "", err)
		}

		now := s.now()
		roundNumber := trivia.NextRoundNumber(len(rounds))
		correctIndex := *session.PendingCorrectIndex
		correct := trivia.IsCorrect(selected, correctIndex)
		outcome := trivia.Score(session, roundNumber, correct, trivia.LastRoundCorrect(rounds))

		round := &model.TriviaRound{
			RoundID:             uuid.New(),
			SessionID:           sessionID,
			RoundNumber:         roundNumber,
			WordID:              req.WordID,
			IsCorrect:           correct,
			TimeTakenSeconds:    req.TimeTakenSeconds,
			SelectedOptionIndex: selected,
			CorrectOptionIndex:  correctIndex,
		}
		if err := s.roundRepo.Create(ctx, tx, round); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_ROUND", "このラウンドは既に回答済みです。", "", model.ErrConflict)
			}
			logger.Error("Failed to record trivia round", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "回答の記録に失敗しました。", "", err)
		}

		progress, err := s.applyMastery(ctx, tx, userID, req.WordID, correct, now)
		if err != nil {
			logger.Error("Failed to update word mastery", "error", err, "word_id", req.WordID)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の更新に失敗しました。", "", err)
		}

		correctAnswer := ""
		if correctIndex >= 0 && correctIndex < len(session.PendingOptions) {
			correctAnswer = session.PendingOptions[correctIndex]
		}

		session.Score = outcome.NewScore
		session.LivesUsed = outcome.LivesUsed
		session.ClearPending()
		if outcome.GameEnded {
			correctRounds := trivia.CountCorrect(rounds)
			if correct {
				correctRounds++
			}
			if err := s.finish(ctx, tx, session, correctRounds, roundNumber); err != nil {
				logger.Error("Failed to finish trivia session", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "ゲームの終了処理に失敗しました。", "", err)
			}
		}
		if err := s.sessionRepo.Update(ctx, tx, session); err != nil {
			return s.sessionUpdateError(ctx, err)
		}

		logger.Debug("Trivia answer recorded", "round_number", roundNumber, "is_correct", correct, "star_rating", progress.StarRating)
		resp = &model.SubmitAnswerResponse{
			IsCorrect:      correct,
			ScoreChange:    outcome.ScoreChange,
			NewScore:       outcome.NewScore,
			LivesRemaining: outcome.LivesRemaining,
			GameEnded:      outcome.GameEnded,
			CorrectIndex:   correctIndex,
			CorrectAnswer:  correctAnswer,
			RoundNumber:    roundNumber,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.AnswerSubmitted(resp.IsCorrect, selected == model.TimedOutIndex, float64(req.TimeTakenSeconds))
	if resp.GameEnded {
		reason := metrics.EndReasonLives
		if resp.RoundNumber >= model.TriviaRoundsPerGame {
			reason = metrics.EndReasonRounds
		}
		metrics.GameCompleted(reason, resp.NewScore)
		logger.Info("Trivia session ended", slog.String("reason", reason), slog.Int("score", resp.NewScore))
	}
	return resp, nil
}

// GetSummary はゲームの結果をまとめます。進行中のゲームでも途中経過を返します
func (s *triviaService) GetSummary(ctx context.Context, userID, sessionID uuid.UUID) (*model.GameSummaryResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "session_id", sessionID)

	session, err := s.sessionRepo.FindByID(ctx, s.db, userID, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errSessionNotFound
		}
		logger.Error("Failed to find trivia session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ゲームの取得に失敗しました。", "", err)
	}

	rounds, err := s.roundRepo.FindBySession(ctx, s.db, sessionID)
	if err != nil {
		logger.Error("Failed to find trivia rounds", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ラウンドの取得に失敗しました。", "", err)
	}

	wordIDs := make([]uuid.UUID, 0, len(rounds))
	for _, r := range rounds {
		wordIDs = append(wordIDs, r.WordID)
	}
	ratings, err := s.ratings(ctx, s.db, userID, wordIDs)
	if err != nil {
		logger.Error("Failed to find word progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の取得に失敗しました。", "", err)
	}

	accuracy := trivia.Accuracy(trivia.CountCorrect(rounds), len(rounds))
	if session.Accuracy != nil {
		accuracy = *session.Accuracy
	}

	return &model.GameSummaryResponse{
		SessionID:      session.SessionID,
		Score:          session.Score,
		Accuracy:       accuracy,
		RoundsPlayed:   len(rounds),
		LivesRemaining: trivia.LivesRemaining(session.LivesConfigured, session.LivesUsed),
		LongestStreak:  trivia.LongestStreak(rounds),
		Ended:          session.IsEnded(),
		IncorrectWords: trivia.IncorrectWords(rounds),
		ImprovedWords:  trivia.ImprovedWords(rounds, ratings),
	}, nil
}
