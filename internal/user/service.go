package user

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SidorenkoTatiana/foodgram-st/internal/dto"
	"github.com/SidorenkoTatiana/foodgram-st/internal/model/user"
	"github.com/SidorenkoTatiana/foodgram-st/internal/upload"
	"github.com/SidorenkoTatiana/foodgram-st/pkg/response"
)

var (
	// 用户名允许字母、数字和 .@+- 字符
	usernameRegex = regexp.MustCompile(`^[\w.@+-]+$`)
)

type UserService struct {
	repo *UserRepository
}

func NewUserService(repo *UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register 注册新用户
func (s *UserService) Register(req dto.RegisterRequest) (*dto.UserProfile, *response.BusinessError) {
	// 1. 参数校验
	if err := s.validateRegister(req); err != nil {
		return nil, err
	}

	// 2. 检查用户名和邮箱是否已存在
	if existing, err := s.repo.FindByUsernameOrEmail(req.Username, req.Email); err == nil {
		if existing.Username == req.Username {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.AlreadyExists),
				response.WithErrorMessage("用户名已存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.AlreadyExists),
			response.WithErrorMessage("邮箱已被注册"),
		)
	}

	// 3. 密码加密
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("密码加密失败"),
		)
	}

	// 4. 创建用户
	newUser := &user.User{
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hashedPassword),
		Role:         user.RoleUser,
	}

	if err := s.repo.Create(newUser); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("用户创建失败"),
		)
	}

	profile := s.toProfile(newUser, 0)
	return &profile, nil
}

// validateRegister 注册参数校验
func (s *UserService) validateRegister(req dto.RegisterRequest) *response.BusinessError {
	if !usernameRegex.MatchString(req.Username) {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("用户名只能包含字母、数字和 .@+- 字符"),
		)
	}
	if len(req.Password) < 8 {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("密码长度至少为8个字符"),
		)
	}
	return nil
}

// GetProfile 获取用户信息，viewerID 用于计算 is_subscribed
func (s *UserService) GetProfile(id, viewerID uint) (*dto.UserProfile, *response.BusinessError) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("用户不存在"),
		)
	}

	profile := s.toProfile(u, viewerID)
	return &profile, nil
}

// ListUsers 分页获取用户列表
func (s *UserService) ListUsers(viewerID uint, page, limit int) ([]dto.UserProfile, int64, error) {
	users, total, err := s.repo.List((page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	profiles := make([]dto.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, s.toProfile(&users[i], viewerID))
	}
	return profiles, total, nil
}

// SetPassword 修改密码，需要验证当前密码
func (s *UserService) SetPassword(userID uint, req dto.SetPasswordRequest) *response.BusinessError {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("用户不存在"),
		)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("当前密码不正确"),
		)
	}

	if len(req.NewPassword) < 8 {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("密码长度至少为8个字符"),
		)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("密码加密失败"),
		)
	}

	u.PasswordHash = string(hashedPassword)
	if err := s.repo.Update(u); err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("密码更新失败"),
		)
	}
	return nil
}

// SetAvatar 设置头像，返回头像 URL
func (s *UserService) SetAvatar(userID uint, dataURL string) (string, *response.BusinessError) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return "", response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("用户不存在"),
		)
	}

	relPath, err := upload.SaveBase64Image(dataURL, "users")
	if err != nil {
		return "", response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage(err.Error()),
		)
	}

	// 替换旧头像
	oldAvatar := u.Avatar
	u.Avatar = relPath
	if err := s.repo.Update(u); err != nil {
		upload.Remove(relPath)
		return "", response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("头像更新失败"),
		)
	}
	if oldAvatar != "" {
		upload.Remove(oldAvatar)
	}

	return upload.URL(relPath), nil
}

// DeleteAvatar 删除头像
func (s *UserService) DeleteAvatar(userID uint) *response.BusinessError {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("用户不存在"),
		)
	}

	if u.Avatar != "" {
		// 先更新数据库，成功后再删除文件
		oldAvatar := u.Avatar
		u.Avatar = ""
		if err := s.repo.Update(u); err != nil {
			return response.NewBusinessError(
				response.WithErrorCode(response.Fail),
				response.WithErrorMessage("头像删除失败"),
			)
		}
		upload.Remove(oldAvatar)
	}
	return nil
}

// Subscribe 订阅作者
// recipesLimit 控制返回的作者菜谱数量，<=0 表示不限制
func (s *UserService) Subscribe(userID, authorID uint, recipesLimit int) (*dto.SubscriptionItem, *response.BusinessError) {
	if userID == authorID {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("不能订阅自己"),
		)
	}

	author, err := s.repo.GetByID(authorID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("作者不存在"),
		)
	}

	if s.repo.IsSubscribed(userID, authorID) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.AlreadyExists),
			response.WithErrorMessage("已订阅该作者"),
		)
	}

	if err := s.repo.CreateSubscription(userID, authorID); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("订阅失败"),
		)
	}

	item, buildErr := s.buildSubscriptionItem(author, userID, recipesLimit)
	if buildErr != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取作者信息失败"),
		)
	}
	return item, nil
}

// Unsubscribe 取消订阅
func (s *UserService) Unsubscribe(userID, authorID uint) *response.BusinessError {
	if _, err := s.repo.GetByID(authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("作者不存在"),
			)
		}
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("取消订阅失败"),
		)
	}

	rows, err := s.repo.DeleteSubscription(userID, authorID)
	if err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("取消订阅失败"),
		)
	}
	if rows == 0 {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("未订阅该作者"),
		)
	}
	return nil
}

// ListSubscriptions 分页获取订阅的作者及其菜谱
func (s *UserService) ListSubscriptions(userID uint, page, limit, recipesLimit int) ([]dto.SubscriptionItem, int64, error) {
	authors, total, err := s.repo.ListSubscribedAuthors(userID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.SubscriptionItem, 0, len(authors))
	for i := range authors {
		item, err := s.buildSubscriptionItem(&authors[i], userID, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	return items, total, nil
}

// buildSubscriptionItem 组装订阅列表项：作者信息 + 菜谱简要列表 + 菜谱总数
func (s *UserService) buildSubscriptionItem(author *user.User, viewerID uint, recipesLimit int) (*dto.SubscriptionItem, error) {
	recipes, err := s.repo.ListAuthorRecipes(author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountAuthorRecipes(author.ID)
	if err != nil {
		return nil, err
	}

	minified := make([]dto.RecipeMinified, 0, len(recipes))
	for _, rec := range recipes {
		minified = append(minified, dto.RecipeMinified{
			ID:          rec.ID,
			Name:        rec.Name,
			Image:       upload.URL(rec.Image),
			CookingTime: rec.CookingTime,
		})
	}

	return &dto.SubscriptionItem{
		UserProfile:  s.toProfile(author, viewerID),
		Recipes:      minified,
		RecipesCount: count,
	}, nil
}

// toProfile 将用户模型转换为响应结构
func (s *UserService) toProfile(u *user.User, viewerID uint) dto.UserProfile {
	profile := dto.UserProfile{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}

	if u.Avatar != "" {
		url := upload.URL(u.Avatar)
		profile.Avatar = &url
	}

	if viewerID != 0 && viewerID != u.ID {
		profile.IsSubscribed = s.repo.IsSubscribed(viewerID, u.ID)
	}

	return profile
}
