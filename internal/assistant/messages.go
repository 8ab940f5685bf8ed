package assistant

import "qrmenu/internal/models"

// Static customer-facing messages. The fallback text is what customers
// see whenever any part of the recommendation pipeline fails: the chat
// surface must never show a raw error.

const fallbackTR = `😔 Üzgünüm, şu anda bir teknik sorun yaşıyorum.

Lütfen:
- Sorunuzu yeniden ifade edin
- Veya menüden direkt seçim yapın
- Personelimizden yardım isteyin

Anlayışınız için teşekkürler! 🙏`

const fallbackEN = `😔 Sorry, I'm experiencing a technical issue right now.

Please:
- Rephrase your question
- Or select directly from the menu
- Ask our staff for help

Thank you for understanding! 🙏`

const welcomeTR = `🍕 **Hoş Geldiniz!** 🍝

Ben sizin menü asistanınızım. Size yardımcı olmak için buradayım!

**Yapabileceklerim:**
- 🔍 Menüden öneri sunmak
- ❓ Sorularınızı cevaplamak
- 🌱 Vejetaryen/vegan seçenekleri göstermek
- 🌶️ Acılık seviyelerini açıklamak
- 🥜 Alerjen bilgileri vermek

**Örnek Sorular:**
- "Vejetaryen ne var?"
- "Acı pizzalarınız var mı?"
- "Fıstık alerjim var, ne önerirsiniz?"
- "100 TL altında ne yiyebilirim?"

Ne istersiniz? 😊`

const welcomeEN = `🍕 **Welcome!** 🍝

I'm your menu assistant, here to help!

**I can help you with:**
- 🔍 Menu recommendations
- ❓ Answering questions
- 🌱 Vegetarian/vegan options
- 🌶️ Spiciness levels
- 🥜 Allergen information

**Example questions:**
- "What vegetarian options do you have?"
- "Do you have spicy pizzas?"
- "I'm allergic to nuts, what do you recommend?"
- "What can I eat under 100 TL?"

What would you like? 😊`

// FallbackMessage returns the static recovery message for a locale.
func FallbackMessage(locale models.Locale) string {
	if locale == models.LocaleEN {
		return fallbackEN
	}
	return fallbackTR
}

// WelcomeMessage returns the greeting shown when a chat starts.
func WelcomeMessage(locale models.Locale) string {
	if locale == models.LocaleEN {
		return welcomeEN
	}
	return welcomeTR
}
