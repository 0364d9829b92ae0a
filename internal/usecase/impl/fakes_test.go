package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
	"nosh/internal/domain/service"
	"nosh/internal/errors"
)

// The fakes below are deliberately small in-memory doubles for the
// repository and service interfaces, keyed the same way the real
// implementations are.

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // keyed by UserID
	err   error                   // forced failure for every call when set
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.err != nil {
		return r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email || existing.PhoneNumber == user.PhoneNumber {
			return repository.ErrUserExists
		}
	}
	r.users[user.UserID] = user

	return nil
}

func (r *fakeUserRepo) FindByUserID(_ context.Context, userID string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		return user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmailOrPhone(_ context.Context, email, phoneNumber string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email || user.PhoneNumber == phoneNumber {
			return true, nil
		}
	}

	return false, nil
}

type fakeStoreRepo struct {
	stores map[string]*entity.Store
	err    error
}

func newFakeStoreRepo(stores ...*entity.Store) *fakeStoreRepo {
	repo := &fakeStoreRepo{stores: make(map[string]*entity.Store)}
	for _, store := range stores {
		repo.stores[store.StoreID] = store
	}

	return repo
}

func (r *fakeStoreRepo) Create(_ context.Context, store *entity.Store) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.stores[store.StoreID]; ok {
		return repository.ErrStoreExists
	}
	r.stores[store.StoreID] = store

	return nil
}

func (r *fakeStoreRepo) FindByStoreID(_ context.Context, storeID string) (*entity.Store, error) {
	if r.err != nil {
		return nil, r.err
	}
	if store, ok := r.stores[storeID]; ok {
		return store, nil
	}

	return nil, repository.ErrStoreNotFound
}

func (r *fakeStoreRepo) ListActive(_ context.Context) ([]*entity.Store, error) {
	if r.err != nil {
		return nil, r.err
	}

	var out []*entity.Store
	for _, store := range r.stores {
		if store.IsActive {
			out = append(out, store)
		}
	}

	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	err      error
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, product := range products {
		repo.products[product.ProductID] = product
	}

	return repo
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.products {
		for _, ev := range existing.Variants {
			for _, nv := range product.Variants {
				if ev.SKU == nv.SKU {
					return repository.ErrSKUExists
				}
			}
		}
	}
	r.products[product.ProductID] = product

	return nil
}

func (r *fakeProductRepo) FindByProductID(_ context.Context, productID string) (*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	if product, ok := r.products[productID]; ok {
		return product, nil
	}

	return nil, repository.ErrProductNotFound
}

func (r *fakeProductRepo) FindInStore(_ context.Context, productID, storeID string) (*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	if product, ok := r.products[productID]; ok && product.StoreID == storeID {
		return product, nil
	}

	return nil, repository.ErrProductNotFound
}

func (r *fakeProductRepo) ListByStore(_ context.Context, storeID string) ([]*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}

	var out []*entity.Product
	for _, product := range r.products {
		if product.StoreID == storeID {
			out = append(out, product)
		}
	}

	return out, nil
}

type fakeOrderRepo struct {
	orders  []*entity.Order
	err     error
	created int // number of successful Create calls
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if r.err != nil {
		return r.err
	}
	r.orders = append(r.orders, order)
	r.created++

	return nil
}

func (r *fakeOrderRepo) FindByOrderID(_ context.Context, orderID string) (*entity.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, order := range r.orders {
		if order.OrderID == orderID {
			return order, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]*entity.Order, error) {
	if r.err != nil {
		return nil, r.err
	}

	var out []*entity.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}

	return out, nil
}

type fakeReviewRepo struct {
	reviews []*entity.Review
	err     error
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	if r.err != nil {
		return r.err
	}
	r.reviews = append(r.reviews, review)

	return nil
}

func (r *fakeReviewRepo) ListByStore(_ context.Context, storeID string) ([]*entity.Review, error) {
	if r.err != nil {
		return nil, r.err
	}

	var out []*entity.Review
	for _, review := range r.reviews {
		if review.StoreID == storeID {
			out = append(out, review)
		}
	}

	return out, nil
}

type fakePartnerRepo struct {
	partners []*entity.DeliveryPartner
	err      error
}

func (r *fakePartnerRepo) Create(_ context.Context, partner *entity.DeliveryPartner) error {
	if r.err != nil {
		return r.err
	}
	r.partners = append(r.partners, partner)

	return nil
}

func (r *fakePartnerRepo) List(_ context.Context) ([]*entity.DeliveryPartner, error) {
	if r.err != nil {
		return nil, r.err
	}

	return r.partners, nil
}

func (r *fakePartnerRepo) FindByPartnerID(_ context.Context, partnerID string) (*entity.DeliveryPartner, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, partner := range r.partners {
		if partner.DeliveryPartnerID == partnerID {
			return partner, nil
		}
	}

	return nil, repository.ErrPartnerNotFound
}

func (r *fakePartnerRepo) ExistsByPhone(_ context.Context, phoneNumber string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, partner := range r.partners {
		if partner.PhoneNumber == phoneNumber {
			return true, nil
		}
	}

	return false, nil
}

type fakeTokenStore struct {
	mu       sync.Mutex
	sessions map[string]entity.RefreshSession
	err      error
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{sessions: make(map[string]entity.RefreshSession)}
}

func (s *fakeTokenStore) Save(_ context.Context, token string, session entity.RefreshSession, _ time.Duration) error {
	if s.err != nil {
		return s.err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session

	return nil
}

func (s *fakeTokenStore) Remove(_ context.Context, token string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[token]; !ok {
		return false, nil
	}
	delete(s.sessions, token)

	return true, nil
}

func (s *fakeTokenStore) contains(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[token]

	return ok
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// stubTokenService issues deterministic token strings and treats any token
// it did not issue as invalid.
type stubTokenService struct {
	mu     sync.Mutex
	seq    int
	issued map[string]service.Claims // refresh token -> claims
}

func newStubTokenService() *stubTokenService {
	return &stubTokenService{issued: make(map[string]service.Claims)}
}

func (s *stubTokenService) IssueTokenPair(userID, email string) (*service.TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	refresh := "refresh-" + strconv.Itoa(s.seq)
	s.issued[refresh] = service.Claims{
		UserID:    userID,
		Email:     email,
		TokenType: "refresh",
		ExpiresAt: time.Now().Add(s.RefreshTokenTTL()),
	}

	return &service.TokenPair{
		AccessToken:  "access-" + strconv.Itoa(s.seq),
		RefreshToken: refresh,
	}, nil
}

func (s *stubTokenService) VerifyAccessToken(string) (*service.Claims, error) {
	return nil, errors.New("not used in these tests")
}

func (s *stubTokenService) VerifyRefreshToken(token string) (*service.Claims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if claims, ok := s.issued[token]; ok {
		return &claims, nil
	}

	return nil, errors.New("token is invalid")
}

func (s *stubTokenService) AccessTokenTTL() time.Duration { return 15 * time.Minute }

func (s *stubTokenService) RefreshTokenTTL() time.Duration { return 7 * 24 * time.Hour }
