package authenticating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	commercemocks "github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/commerce/mocks"
	repositorymocks "github.com/vfg2006/commerce-backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-backoffice-api/internal/config"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := repositorymocks.NewMockUserRepository(ctrl)
	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)

	service := &Service{
		userRepo:        mockUserRepo,
		commerceService: mockIntegrator,
		cfg:             &config.Config{SecretKey: "chave-de-teste"},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Senha@Forte1"), bcrypt.MinCost)
	assert.NoError(t, err)

	activeUser := &domain.User{
		ID:           7,
		Name:         "Ana",
		Lastname:     "Souza",
		Email:        "ana@empresa.com",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       1,
		LinkedStores: []string{"store-1", "store-2"},
	}

	t.Run("Credenciais válidas - deve emitir token com as lojas vinculadas", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser, nil)

		token, err := service.LoginUser("Ana@Empresa.com ", "Senha@Forte1")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, []string{"store-1", "store-2"}, claims.UserStores)
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser, nil)

		token, err := service.LoginUser("ana@empresa.com", "senha-errada")

		assert.Empty(t, token)
		assert.True(t, IsCredentialsError(err))
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("ghost@empresa.com").Return(nil, nil)

		token, err := service.LoginUser("ghost@empresa.com", "qualquer")

		assert.Empty(t, token)
		assert.Error(t, err)
	})

	t.Run("Conta desativada", func(t *testing.T) {
		disabled := *activeUser
		disabled.Active = false

		mockUserRepo.EXPECT().GetUserByEmail("ana@empresa.com").Return(&disabled, nil)

		token, err := service.LoginUser("ana@empresa.com", "Senha@Forte1")

		assert.Empty(t, token)
		assert.Error(t, err)
	})
}

func TestLinkUserStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := repositorymocks.NewMockUserRepository(ctrl)
	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)

	service := &Service{
		userRepo:        mockUserRepo,
		commerceService: mockIntegrator,
		cfg:             &config.Config{SecretKey: "chave-de-teste"},
	}

	user := &domain.User{ID: 7, Email: "ana@empresa.com", Active: true}
	stores := []domain.Store{
		{Id: "store-1", Name: "Loja Centro"},
		{Id: "store-2", Name: "Loja Norte"},
	}

	t.Run("Loja existente no comércio - deve criar o vínculo", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(7).Return(user, nil)
		mockIntegrator.EXPECT().ListStores().Return(stores, nil)
		mockUserRepo.EXPECT().LinkUserStore(7, "store-1").Return(nil)

		err := service.LinkUserStore(7, "store-1")

		assert.NoError(t, err)
	})

	t.Run("Loja inexistente no comércio - deve rejeitar o vínculo", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(7).Return(user, nil)
		mockIntegrator.EXPECT().ListStores().Return(stores, nil)

		err := service.LinkUserStore(7, "store-ghost")

		assert.Error(t, err)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(99).Return(nil, nil)

		err := service.LinkUserStore(99, "store-1")

		assert.Error(t, err)
	})
}

func TestGetUserLinkedStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := repositorymocks.NewMockUserRepository(ctrl)
	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)

	service := &Service{
		userRepo:        mockUserRepo,
		commerceService: mockIntegrator,
		cfg:             &config.Config{SecretKey: "chave-de-teste"},
	}

	stores := []domain.Store{
		{Id: "store-1", Name: "Loja Centro"},
		{Id: "store-2", Name: "Loja Norte"},
	}

	t.Run("Vínculos resolvidos contra o cadastro do comércio", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserLinkedStores(7).Return([]string{"store-2", "store-1"}, nil)
		mockIntegrator.EXPECT().ListStores().Return(stores, nil)

		linked, err := service.GetUserLinkedStores(7)

		assert.NoError(t, err)
		assert.Len(t, linked, 2)
		assert.Equal(t, "Loja Norte", linked[0].Name)
		assert.Equal(t, "Loja Centro", linked[1].Name)
	})

	t.Run("Loja removida no upstream - deve ficar fora da resposta", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserLinkedStores(7).Return([]string{"store-1", "store-extinta"}, nil)
		mockIntegrator.EXPECT().ListStores().Return(stores, nil)

		linked, err := service.GetUserLinkedStores(7)

		assert.NoError(t, err)
		assert.Len(t, linked, 1)
		assert.Equal(t, "store-1", linked[0].Id)
	})

	t.Run("Usuário sem vínculos - não deve consultar o comércio", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserLinkedStores(7).Return(nil, nil)

		linked, err := service.GetUserLinkedStores(7)

		assert.NoError(t, err)
		assert.Empty(t, linked)
	})
}

func TestManageUserStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := repositorymocks.NewMockUserRepository(ctrl)
	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)

	service := &Service{
		userRepo:        mockUserRepo,
		commerceService: mockIntegrator,
		cfg:             &config.Config{SecretKey: "chave-de-teste"},
	}

	user := &domain.User{ID: 7, Email: "ana@empresa.com", Active: true}

	t.Run("Deve desvincular as removidas e vincular as novas", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(7).Return(user, nil)
		mockUserRepo.EXPECT().GetUserLinkedStores(7).Return([]string{"store-1", "store-2"}, nil)
		mockUserRepo.EXPECT().UnlinkUserStore(7, "store-2").Return(nil)
		mockUserRepo.EXPECT().LinkUserStore(7, "store-3").Return(nil)

		err := service.ManageUserStores(7, []string{"store-1", "store-3"})

		assert.NoError(t, err)
	})

	t.Run("Lista vazia - deve remover todos os vínculos", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(7).Return(user, nil)
		mockUserRepo.EXPECT().GetUserLinkedStores(7).Return([]string{"store-1"}, nil)
		mockUserRepo.EXPECT().UnlinkUserStore(7, "store-1").Return(nil)

		err := service.ManageUserStores(7, nil)

		assert.NoError(t, err)
	})

	t.Run("Falha ao buscar os vínculos atuais - deve propagar o erro", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(7).Return(user, nil)
		mockUserRepo.EXPECT().
			GetUserLinkedStores(7).
			Return(nil, errors.New("erro no banco de dados"))

		err := service.ManageUserStores(7, []string{"store-1"})

		assert.Error(t, err)
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	service := &Service{}

	testCases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "Senha forte completa", password: "Senha@Forte1", wantErr: false},
		{name: "Muito curta", password: "S@f1", wantErr: true},
		{name: "Sem maiúscula", password: "senha@forte1", wantErr: true},
		{name: "Sem minúscula", password: "SENHA@FORTE1", wantErr: true},
		{name: "Sem número", password: "Senha@Forte", wantErr: true},
		{name: "Sem caractere especial", password: "SenhaForte1", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tc.password)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
