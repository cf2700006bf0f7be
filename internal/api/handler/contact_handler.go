package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"techfest/internal/api/response"
	"techfest/internal/constants"
	"techfest/internal/model"
	"techfest/internal/service"
	"techfest/pkg/geetest"
	"techfest/pkg/logger"
)

const maxContactBodyBytes = 64 << 10

// ContactHandler 联系/赞助表单处理器
type ContactHandler struct {
	contactService *service.ContactService
	geetestClient  *geetest.GeetestClient
	logger         *logger.Logger
}

// NewContactHandler 创建表单处理器实例，geetestClient 为 nil 时不做人机验证
func NewContactHandler(contactService *service.ContactService, geetestClient *geetest.GeetestClient, logger *logger.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		geetestClient:  geetestClient,
		logger:         logger,
	}
}

// ContactRequest 表单提交请求，只接受以下字段
type ContactRequest struct {
	Type            string `json:"type" binding:"omitempty,max=32"`
	Name            string `json:"name" binding:"max=100"`
	Email           string `json:"email" binding:"omitempty,email,max=254"`
	Phone           string `json:"phone" binding:"max=32"`
	College         string `json:"college" binding:"max=200"`
	Subject         string `json:"subject" binding:"max=200"`
	Message         string `json:"message" binding:"max=5000"`
	CompanyName     string `json:"companyName" binding:"max=200"`
	ContactPerson   string `json:"contactPerson" binding:"max=100"`
	SponsorshipTier string `json:"sponsorshipTier" binding:"max=50"`
	Website         string `json:"website" binding:"omitempty,url,max=500"`

	// 极验验证参数
	LotNumber     string `json:"lot_number"`
	CaptchaOutput string `json:"captcha_output"`
	PassToken     string `json:"pass_token"`
	GenTime       string `json:"gen_time"`
}

func (r *ContactRequest) toModel() *model.ContactSubmission {
	return &model.ContactSubmission{
		Type:            r.Type,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		College:         r.College,
		Subject:         r.Subject,
		Message:         r.Message,
		CompanyName:     r.CompanyName,
		ContactPerson:   r.ContactPerson,
		SponsorshipTier: r.SponsorshipTier,
		Website:         r.Website,
	}
}

// isEmpty 没有任何表单内容
func (r *ContactRequest) isEmpty() bool {
	return r.Name == "" && r.Email == "" && r.Phone == "" && r.Message == "" && r.CompanyName == "" && r.ContactPerson == ""
}

// bindContactRequest 严格解码，出现未知字段时报错
func bindContactRequest(c *gin.Context, req *ContactRequest) error {
	decoder := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, maxContactBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(req); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(req)
}

// SubmitContact 提交联系或赞助表单
// @Summary 提交联系/赞助表单
// @Tags 联系
// @Accept json
// @Produce json
// @Param body body ContactRequest true "表单内容"
// @Success 201 {object} response.Response "成功"
// @Router /api/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := bindContactRequest(c, &req); err != nil {
		response.Error(c, http.StatusBadRequest, constants.ErrInvalidParams+"："+err.Error())
		return
	}
	if req.isEmpty() {
		response.Error(c, http.StatusBadRequest, constants.ErrInvalidParams)
		return
	}

	if h.geetestClient != nil {
		params := geetest.VerifyParams{
			LotNumber:     req.LotNumber,
			CaptchaOutput: req.CaptchaOutput,
			PassToken:     req.PassToken,
			GenTime:       req.GenTime,
		}
		if err := h.geetestClient.Verify(c.Request.Context(), params); err != nil {
			h.logger.Warn("人机验证失败", "ip", c.ClientIP(), "error", err)
			response.Error(c, http.StatusBadRequest, constants.ErrCaptchaFailed)
			return
		}
	}

	if err := h.contactService.Submit(c.Request.Context(), req.toModel()); err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusCreated, constants.SuccessSubmit, nil)
}
