// Package memory is an in-process implementation of the repository
// interfaces. It is safe for concurrent use and backs tests and the
// "memory" database driver for local development.
package memory

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	_ repository.UserRepository              = userRepo{}
	_ repository.ExerciseRepository          = exerciseRepo{}
	_ repository.WorkoutRepository           = workoutRepo{}
	_ repository.FoodItemRepository          = foodItemRepo{}
	_ repository.NutritionPlanRepository     = planRepo{}
	_ repository.EmailVerificationRepository = verificationRepo{}
	_ repository.UploadRepository            = uploadRepo{}
)

// Store holds every collection behind a single lock, so the uniqueness
// checks below are atomic with the writes they guard.
type Store struct {
	mu            sync.RWMutex
	now           func() time.Time
	users         map[primitive.ObjectID]domain.User
	exercises     map[primitive.ObjectID]domain.Exercise
	workouts      map[primitive.ObjectID]domain.Workout
	foodItems     map[primitive.ObjectID]domain.FoodItem
	plans         map[primitive.ObjectID]domain.NutritionPlan
	verifications map[primitive.ObjectID]domain.EmailVerification
	uploads       map[primitive.ObjectID]domain.Upload
}

// New creates an empty store.
func New() *Store {
	return &Store{
		now:           func() time.Time { return time.Now().UTC() },
		users:         make(map[primitive.ObjectID]domain.User),
		exercises:     make(map[primitive.ObjectID]domain.Exercise),
		workouts:      make(map[primitive.ObjectID]domain.Workout),
		foodItems:     make(map[primitive.ObjectID]domain.FoodItem),
		plans:         make(map[primitive.ObjectID]domain.NutritionPlan),
		verifications: make(map[primitive.ObjectID]domain.EmailVerification),
		uploads:       make(map[primitive.ObjectID]domain.Upload),
	}
}

func (s *Store) Users() repository.UserRepository { return userRepo{s} }
func (s *Store) Exercises() repository.ExerciseRepository { return exerciseRepo{s} }
func (s *Store) Workouts() repository.WorkoutRepository { return workoutRepo{s} }
func (s *Store) FoodItems() repository.FoodItemRepository { return foodItemRepo{s} }
func (s *Store) Uploads() repository.UploadRepository { return uploadRepo{s} }
func (s *Store) NutritionPlans() repository.NutritionPlanRepository {
	return planRepo{s}
}
func (s *Store) EmailVerifications() repository.EmailVerificationRepository {
	return verificationRepo{s}
}

func idSet(ids []primitive.ObjectID) map[primitive.ObjectID]struct{} {
	set := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// newestFirst orders by creation time, breaking ties with the (monotonic) ObjectID.
func newestFirst(aCreated, bCreated time.Time, aID, bID primitive.ObjectID) bool {
	if !aCreated.Equal(bCreated) {
		return aCreated.After(bCreated)
	}
	return aID.Hex() > bID.Hex()
}

// Users -----------------------------------------------------------------------

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = r.s.now()
	user.UpdatedAt = user.CreatedAt
	r.s.users[user.ID] = *user
	return user.ID, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r userRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r userRepo) SetVerified(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Verified = true
	u.UpdatedAt = r.s.now()
	r.s.users[id] = u
	return nil
}

// Exercises -------------------------------------------------------------------

type exerciseRepo struct{ s *Store }

func cloneExercise(e domain.Exercise) domain.Exercise {
	e.TargetedMuscles = slices.Clone(e.TargetedMuscles)
	return e
}

// titleTakenLocked reports whether owner already has another exercise called title.
func (r exerciseRepo) titleTakenLocked(owner primitive.ObjectID, title string, self primitive.ObjectID) bool {
	for id, e := range r.s.exercises {
		if id != self && e.UserID == owner && e.Title == title {
			return true
		}
	}
	return false
}

func (r exerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.titleTakenLocked(exercise.UserID, exercise.Title, primitive.NilObjectID) {
		return primitive.NilObjectID, repository.ErrDuplicate
	}
	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = r.s.now()
	exercise.UpdatedAt = exercise.CreatedAt
	r.s.exercises[exercise.ID] = cloneExercise(*exercise)
	return exercise.ID, nil
}

func (r exerciseRepo) GetByID(_ context.Context, ownerID, id primitive.ObjectID) (*domain.Exercise, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.exercises[id]
	if !ok || e.UserID != ownerID {
		return nil, repository.ErrNotFound
	}
	e = cloneExercise(e)
	return &e, nil
}

func (r exerciseRepo) GetByTitle(_ context.Context, ownerID primitive.ObjectID, title string) (*domain.Exercise, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, e := range r.s.exercises {
		if e.UserID == ownerID && e.Title == title {
			e = cloneExercise(e)
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r exerciseRepo) GetByIDs(_ context.Context, ownerID primitive.ObjectID, ids []primitive.ObjectID) ([]domain.Exercise, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Exercise, 0, len(ids))
	for id := range idSet(ids) {
		if e, ok := r.s.exercises[id]; ok && e.UserID == ownerID {
			out = append(out, cloneExercise(e))
		}
	}
	return out, nil
}

func (r exerciseRepo) List(_ context.Context, ownerID primitive.ObjectID, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Exercise, 0)
	for _, e := range r.s.exercises {
		if e.UserID != ownerID {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.Intensity != "" && e.Intensity != filter.Intensity {
			continue
		}
		out = append(out, cloneExercise(e))
	}
	sort.Slice(out, func(i, j int) bool {
		return newestFirst(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (r exerciseRepo) Update(_ context.Context, exercise *domain.Exercise) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.exercises[exercise.ID]
	if !ok || current.UserID != exercise.UserID {
		return repository.ErrNotFound
	}
	if r.titleTakenLocked(exercise.UserID, exercise.Title, exercise.ID) {
		return repository.ErrDuplicate
	}
	exercise.CreatedAt = current.CreatedAt
	exercise.UpdatedAt = r.s.now()
	r.s.exercises[exercise.ID] = cloneExercise(*exercise)
	return nil
}

func (r exerciseRepo) Delete(_ context.Context, ownerID, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.exercises[id]
	if !ok || e.UserID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.s.exercises, id)
	return nil
}

// Workouts --------------------------------------------------------------------

type workoutRepo struct{ s *Store }

func cloneWorkout(w domain.Workout) domain.Workout {
	w.Exercises = slices.Clone(w.Exercises)
	return w
}

func (r workoutRepo) Create(_ context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	workout.ID = primitive.NewObjectID()
	workout.CreatedAt = r.s.now()
	workout.UpdatedAt = workout.CreatedAt
	r.s.workouts[workout.ID] = cloneWorkout(*workout)
	return workout.ID, nil
}

func (r workoutRepo) GetByID(_ context.Context, ownerID, id primitive.ObjectID) (*domain.Workout, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	w, ok := r.s.workouts[id]
	if !ok || w.UserID != ownerID {
		return nil, repository.ErrNotFound
	}
	w = cloneWorkout(w)
	return &w, nil
}

func (r workoutRepo) List(_ context.Context, ownerID primitive.ObjectID, filter domain.WorkoutFilter) ([]domain.Workout, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Workout, 0)
	for _, w := range r.s.workouts {
		if w.UserID != ownerID {
			continue
		}
		if filter.Intensity != "" && w.Intensity != filter.Intensity {
			continue
		}
		out = append(out, cloneWorkout(w))
	}
	sort.Slice(out, func(i, j int) bool {
		return newestFirst(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (r workoutRepo) Update(_ context.Context, workout *domain.Workout) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.workouts[workout.ID]
	if !ok || current.UserID != workout.UserID {
		return repository.ErrNotFound
	}
	workout.CreatedAt = current.CreatedAt
	workout.UpdatedAt = r.s.now()
	r.s.workouts[workout.ID] = cloneWorkout(*workout)
	return nil
}

func (r workoutRepo) Delete(_ context.Context, ownerID, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w, ok := r.s.workouts[id]
	if !ok || w.UserID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.s.workouts, id)
	return nil
}

// Food items ------------------------------------------------------------------

type foodItemRepo struct{ s *Store }

func (r foodItemRepo) Create(_ context.Context, item *domain.FoodItem) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	item.ID = primitive.NewObjectID()
	item.CreatedAt = r.s.now()
	item.UpdatedAt = item.CreatedAt
	r.s.foodItems[item.ID] = *item
	return item.ID, nil
}

func (r foodItemRepo) GetByID(_ context.Context, ownerID, id primitive.ObjectID) (*domain.FoodItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	f, ok := r.s.foodItems[id]
	if !ok || f.UserID != ownerID {
		return nil, repository.ErrNotFound
	}
	return &f, nil
}

func (r foodItemRepo) GetByIDs(_ context.Context, ownerID primitive.ObjectID, ids []primitive.ObjectID) ([]domain.FoodItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.FoodItem, 0, len(ids))
	for id := range idSet(ids) {
		if f, ok := r.s.foodItems[id]; ok && f.UserID == ownerID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r foodItemRepo) List(_ context.Context, ownerID primitive.ObjectID) ([]domain.FoodItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.FoodItem, 0)
	for _, f := range r.s.foodItems {
		if f.UserID == ownerID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.Hex() < out[j].ID.Hex()
	})
	return out, nil
}

func (r foodItemRepo) Update(_ context.Context, item *domain.FoodItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.foodItems[item.ID]
	if !ok || current.UserID != item.UserID {
		return repository.ErrNotFound
	}
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = r.s.now()
	r.s.foodItems[item.ID] = *item
	return nil
}

func (r foodItemRepo) Delete(_ context.Context, ownerID, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f, ok := r.s.foodItems[id]
	if !ok || f.UserID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.s.foodItems, id)
	return nil
}

// Nutrition plans -------------------------------------------------------------

type planRepo struct{ s *Store }

func clonePlan(p domain.NutritionPlan) domain.NutritionPlan {
	p.FoodItems = slices.Clone(p.FoodItems)
	if p.MaximumCalories != nil {
		limit := *p.MaximumCalories
		p.MaximumCalories = &limit
	}
	return p
}

func (r planRepo) Create(_ context.Context, plan *domain.NutritionPlan) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, p := range r.s.plans {
		if p.UserID == plan.UserID {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	plan.ID = primitive.NewObjectID()
	plan.CreatedAt = r.s.now()
	plan.UpdatedAt = plan.CreatedAt
	r.s.plans[plan.ID] = clonePlan(*plan)
	return plan.ID, nil
}

func (r planRepo) GetByID(_ context.Context, ownerID, id primitive.ObjectID) (*domain.NutritionPlan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.plans[id]
	if !ok || p.UserID != ownerID {
		return nil, repository.ErrNotFound
	}
	p = clonePlan(p)
	return &p, nil
}

func (r planRepo) GetByOwner(_ context.Context, ownerID primitive.ObjectID) (*domain.NutritionPlan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.plans {
		if p.UserID == ownerID {
			p = clonePlan(p)
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r planRepo) List(ctx context.Context, ownerID primitive.ObjectID) ([]domain.NutritionPlan, error) {
	p, err := r.GetByOwner(ctx, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return []domain.NutritionPlan{}, nil
	}
	if err != nil {
		return nil, err
	}
	return []domain.NutritionPlan{*p}, nil
}

func (r planRepo) Update(_ context.Context, plan *domain.NutritionPlan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.plans[plan.ID]
	if !ok || current.UserID != plan.UserID {
		return repository.ErrNotFound
	}
	plan.CreatedAt = current.CreatedAt
	plan.UpdatedAt = r.s.now()
	r.s.plans[plan.ID] = clonePlan(*plan)
	return nil
}

func (r planRepo) Delete(_ context.Context, ownerID, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.plans[id]
	if !ok || p.UserID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.s.plans, id)
	return nil
}

// Email verifications ---------------------------------------------------------

type verificationRepo struct{ s *Store }

func (r verificationRepo) Create(_ context.Context, v *domain.EmailVerification) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.verifications {
		if existing.Token == v.Token {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	v.ID = primitive.NewObjectID()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = r.s.now()
	}
	r.s.verifications[v.ID] = *v
	return v.ID, nil
}

func (r verificationRepo) GetByToken(_ context.Context, token string) (*domain.EmailVerification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, v := range r.s.verifications {
		if v.Token == token {
			return &v, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r verificationRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.verifications[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.verifications, id)
	return nil
}

// Uploads ---------------------------------------------------------------------

type uploadRepo struct{ s *Store }

func (r uploadRepo) Create(_ context.Context, upload *domain.Upload) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.uploads {
		if u.S3ObjectKey == upload.S3ObjectKey {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	upload.ID = primitive.NewObjectID()
	upload.UploadedAt = r.s.now()
	r.s.uploads[upload.ID] = *upload
	return upload.ID, nil
}

func (r uploadRepo) GetByID(_ context.Context, ownerID, id primitive.ObjectID) (*domain.Upload, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.uploads[id]
	if !ok || u.UserID != ownerID {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r uploadRepo) Delete(_ context.Context, ownerID, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.uploads[id]
	if !ok || u.UserID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.s.uploads, id)
	return nil
}
