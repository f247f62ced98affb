package mailing

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type ExpiringItem struct {
	Name            string
	ExpirationDate  time.Time
	Category        *string
	StorageLocation *string
}

// SendExpirationDigest sends one reminder email covering every item in the
// group.
func SendExpirationDigest(toEmail string, userName string, items []ExpiringItem) error {
	subject := fmt.Sprintf("🍽️ %d food items expiring soon", len(items))
	if len(items) == 1 {
		subject = fmt.Sprintf("🍽️ Food expiring soon: %s", items[0].Name)
	}

	intro := fmt.Sprintf("You have %d food items that are expiring soon. Time to get cooking!", len(items))
	if len(items) == 1 {
		intro = "You have a food item that's expiring soon. Don't let it go to waste!"
	}

	body := fmt.Sprintf(`
	<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="color: #111827;">leftknovers</h1>
		<p style="color: #6b7280;">Food expiration reminder</p>
		<h2>Hi %s! 👋</h2>
		<p>%s</p>
		<h3>Expiring Items:</h3>
		<pre style="background: #fef3c7; border-left: 4px solid #f59e0b; padding: 16px; border-radius: 8px; font-family: sans-serif; white-space: pre-wrap;">%s</pre>
		<p><a href="%s">View Your Items</a></p>
		<p style="color: #6b7280; font-size: 14px;">💡 Tip: Use up expiring items in smoothies, soups, or stir-fries to reduce food waste!</p>
		<p style="color: #6b7280; font-size: 14px;">You can manage your notification settings in the leftknovers app.</p>
	</div>`,
		userName, intro, formatExpiringItems(items), LoadMailConfig().AppURL)

	return SendMail(toEmail, subject, body)
}

func formatExpiringItems(items []ExpiringItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, formatExpiringItem(item))
	}
	return strings.Join(lines, "\n")
}

func formatExpiringItem(item ExpiringItem) string {
	daysUntil := int(math.Ceil(time.Until(item.ExpirationDate).Hours() / 24))

	urgency := ""
	switch {
	case daysUntil < 0:
		urgency = " (Expired)"
	case daysUntil == 0:
		urgency = " (Expires today!)"
	case daysUntil == 1:
		urgency = " (Expires tomorrow)"
	case daysUntil <= 3:
		urgency = fmt.Sprintf(" (%d days left)", daysUntil)
	}

	category := ""
	if item.Category != nil && *item.Category != "" {
		category = fmt.Sprintf(" (%s)", *item.Category)
	}
	location := ""
	if item.StorageLocation != nil && *item.StorageLocation != "" {
		location = fmt.Sprintf(" - %s", *item.StorageLocation)
	}

	return fmt.Sprintf("• %s%s%s - %s%s",
		item.Name, category, location, item.ExpirationDate.Format("Jan 2, 2006"), urgency)
}
