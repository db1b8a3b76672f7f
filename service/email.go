package service

import (
	"fmt"

	"wedding/config"
	"wedding/models"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendAppointmentReminder 发送预约提醒邮件
func (s *EmailService) SendAppointmentReminder(toEmail string, appt *models.Appointment) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 EMAIL_ENABLED=true")
	}

	subject := "【婚礼策划系统】预约提醒：" + appt.Title
	body := s.generateReminderBody(appt)

	return s.sendEmail(toEmail, subject, body)
}

// generateReminderBody 生成提醒邮件内容
func (s *EmailService) generateReminderBody(appt *models.Appointment) string {
	location := "待定"
	if appt.Location != nil && *appt.Location != "" {
		location = *appt.Location
	}
	notes := ""
	if appt.Notes != nil && *appt.Notes != "" {
		notes = fmt.Sprintf(`<p style="color:#666;">备注：%s</p>`, *appt.Notes)
	}
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #ec4899, #be185d); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 16px; }
        .detail { background: #fdf2f8; border-left: 4px solid #ec4899; padding: 15px; margin: 20px 0; border-radius: 4px; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>💍 婚礼策划系统</h1>
        </div>
        <div class="content">
            <p>您有一个即将到来的预约：</p>
            <div class="detail">
                <p><strong>%s</strong></p>
                <p>时间：%s %s</p>
                <p>地点：%s</p>
            </div>
            %s
            <p>祝筹备顺利！</p>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
            <p>© 婚礼策划系统 - 您的婚礼筹备助手</p>
        </div>
    </div>
</body>
</html>
`, appt.Title, appt.Date, appt.Time, location, notes)
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}

// SendTestEmail 发送测试邮件
func (s *EmailService) SendTestEmail(toEmail string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用")
	}

	subject := "【婚礼策划系统】邮件配置测试"
	body := `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>✅ 邮件配置成功</h2>
    <p>如果您收到这封邮件，说明邮件服务配置正确。</p>
    <p style="color: #666;">—— 婚礼策划系统</p>
</body>
</html>
`
	return s.sendEmail(toEmail, subject, body)
}
