package mailing

import "fmt"

// SendFriendInvitation emails an invitation link containing the token. The
// invitation itself is already persisted; a failure here is best-effort.
func SendFriendInvitation(toEmail string, senderName string, senderEmail string, invitationToken string) error {
	invitationURL := fmt.Sprintf("%s/accept-friend/%s", LoadMailConfig().AppURL, invitationToken)
	subject := fmt.Sprintf("%s invited you to join leftknovers!", senderName)

	body := fmt.Sprintf(`
	<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="color: #111827;">leftknovers</h1>
		<p style="color: #6b7280;">Friend invitation</p>
		<h2>You've been invited! 🎉</h2>
		<p><strong>%s</strong> (%s) has invited you to connect on leftknovers,
		the smart food tracking app that helps reduce food waste.</p>
		<p>Join them in tracking leftovers, sharing tips, and making a positive impact on the environment!</p>
		<p><a href="%s" style="display: inline-block; background: #10b981; color: white; text-decoration: none; padding: 16px 32px; border-radius: 8px;">Accept Invitation</a></p>
		<h3>What is leftknovers?</h3>
		<ul style="color: #6b7280;">
			<li>📱 Smart Tracking - track your food with photos and expiration dates</li>
			<li>🔔 Smart Notifications - get reminded before food expires</li>
			<li>📊 Analytics - see your waste reduction progress</li>
			<li>🌍 Environmental Impact - help reduce food waste and save money</li>
		</ul>
		<p style="color: #6b7280; font-size: 14px;">This invitation will expire in 7 days.
		If you don't want to receive these emails, you can ignore this message.</p>
	</div>`,
		senderName, senderEmail, invitationURL)

	return SendMail(toEmail, subject, body)
}
