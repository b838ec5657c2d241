package services

import (
	"fmt"
	"net/smtp"
	"os"

	"hotel-booking/dto"
)

// SendBookingEmail gửi email xác nhận đặt phòng. Thiếu cấu hình SMTP thì bỏ qua.
func SendBookingEmail(booking *dto.BookingResponse) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")

	if from == "" || password == "" || host == "" || port == "" {
		return nil
	}

	to := []string{booking.GuestEmail}
	subject := "Subject: Đặt phòng thành công\n"

	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Đặt phòng thành công</title>
	</head>
	<body>
		<p>Xin chào %s,</p>
		<p>Chúc mừng! Bạn đã đặt phòng thành công.</p>
		<p>Thông tin đặt phòng của bạn như sau:</p>
		<ul>
			<li>Mã đặt phòng: <strong>%d</strong></li>
			<li>Số phòng: <strong>%s</strong></li>
			<li>Ngày nhận phòng: <strong>%s</strong></li>
			<li>Ngày trả phòng: <strong>%s</strong></li>
			<li>Tổng giá trị: <strong>%.2f</strong></li>
		</ul>
		<p>Chúng tôi sẽ gửi cho bạn thông tin chi tiết khi có sự thay đổi.</p>
		<p>Xin cảm ơn,<br>Nhóm hỗ trợ</p>
	</body>
	</html>`, booking.GuestName, booking.ID, booking.RoomNumber, booking.CheckInDate, booking.CheckOutDate, booking.TotalAmount)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)

	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}
