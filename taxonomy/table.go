package taxonomy

import "go-sentiment/types"

// DefaultTable returns the static lookup from raw lowercase sentiment
// labels to broad groups. The label set covers everything observed in
// the social media sentiment dataset; labels outside the table fall
// under the tag policy (Neutral/Other).
func DefaultTable() map[string]types.SentimentGroup {
	return map[string]types.SentimentGroup{
		// == Joy ==
		"positive": types.Joy, "happiness": types.Joy, "joy": types.Joy, "love": types.Joy,
		"amusement": types.Joy, "enjoyment": types.Joy, "admiration": types.Joy, "affection": types.Joy,
		"awe": types.Joy, "adoration": types.Joy, "excitement": types.Joy, "kind": types.Joy,
		"pride": types.Joy, "elation": types.Joy, "euphoria": types.Joy, "contentment": types.Joy,
		"serenity": types.Joy, "gratitude": types.Joy, "hope": types.Joy, "empowerment": types.Joy,
		"compassion": types.Joy, "tenderness": types.Joy, "arousal": types.Joy, "enthusiasm": types.Joy,
		"fulfillment": types.Joy, "reverence": types.Joy, "hopeful": types.Joy, "proud": types.Joy,
		"grateful": types.Joy, "empathetic": types.Joy, "compassionate": types.Joy, "playful": types.Joy,
		"free-spirited": types.Joy, "inspired": types.Joy, "confident": types.Joy, "thrill": types.Joy,
		"overjoyed": types.Joy, "inspiration": types.Joy, "motivation": types.Joy, "satisfaction": types.Joy,
		"blessed": types.Joy, "appreciation": types.Joy, "confidence": types.Joy, "accomplishment": types.Joy,
		"wonderment": types.Joy, "optimism": types.Joy, "enchantment": types.Joy, "playfuljoy": types.Joy,
		"dreamchaser": types.Joy, "elegance": types.Joy, "whimsy": types.Joy, "harmony": types.Joy,
		"creativity": types.Joy, "radiance": types.Joy, "wonder": types.Joy, "rejuvenation": types.Joy,
		"coziness": types.Joy, "adventure": types.Joy, "melodic": types.Joy, "festivejoy": types.Joy,
		"freedom": types.Joy, "dazzle": types.Joy, "adrenaline": types.Joy, "artisticburst": types.Joy,
		"culinaryodyssey": types.Joy, "resilience": types.Joy, "spark": types.Joy, "marvel": types.Joy,
		"positivity": types.Joy, "kindness": types.Joy, "friendship": types.Joy, "success": types.Joy,
		"exploration": types.Joy, "amazement": types.Joy, "romance": types.Joy, "captivation": types.Joy,
		"tranquility": types.Joy, "grandeur": types.Joy, "energy": types.Joy, "celebration": types.Joy,
		"charm": types.Joy, "ecstasy": types.Joy, "colorful": types.Joy, "hypnotic": types.Joy,
		"connection": types.Joy, "iconic": types.Joy, "engagement": types.Joy, "touched": types.Joy,
		"triumph": types.Joy, "heartwarming": types.Joy, "breakthrough": types.Joy, "joy in baking": types.Joy,
		"imagination": types.Joy, "vibrancy": types.Joy, "mesmerizing": types.Joy,
		"culinary adventure": types.Joy, "winter magic": types.Joy, "thrilling journey": types.Joy,
		"nature's beauty": types.Joy, "celestial wonder": types.Joy, "creative inspiration": types.Joy,
		"runway creativity": types.Joy, "ocean's freedom": types.Joy, "relief": types.Joy,
		"mischievous": types.Joy, "happy": types.Joy, "joyfulreunion": types.Joy, "solace": types.Joy,
		"envisioning history": types.Joy,

		// == Sadness ==
		"sadness": types.Sadness, "disappointed": types.Sadness, "despair": types.Sadness,
		"grief": types.Sadness, "loneliness": types.Sadness, "melancholy": types.Sadness,
		"yearning": types.Sadness, "devastated": types.Sadness, "heartbreak": types.Sadness,
		"betrayal": types.Sadness, "suffering": types.Sadness, "emotionalstorm": types.Sadness,
		"isolation": types.Sadness, "disappointment": types.Sadness, "lostlove": types.Sadness,
		"exhaustion": types.Sadness, "sorrow": types.Sadness, "darkness": types.Sadness,
		"desperation": types.Sadness, "ruins": types.Sadness, "desolation": types.Sadness,
		"loss": types.Sadness, "heartache": types.Sadness, "solitude": types.Sadness,
		"sympathy": types.Sadness, "sad": types.Sadness, "bittersweet": types.Sadness,

		// == Anger ==
		"negative": types.Anger, "anger": types.Anger, "disgust": types.Anger, "bitter": types.Anger,
		"resentment": types.Anger, "frustration": types.Anger, "jealousy": types.Anger,
		"envy": types.Anger, "bitterness": types.Anger, "jealous": types.Anger,
		"frustrated": types.Anger, "envious": types.Anger, "dismissive": types.Anger,
		"hate": types.Anger, "bad": types.Anger, "mean-spirited": types.Anger,

		// == Fear ==
		"fear": types.Fear, "boredom": types.Fear, "anxiety": types.Fear, "intimidation": types.Fear,
		"helplessness": types.Fear, "fearful": types.Fear, "apprehensive": types.Fear,
		"overwhelmed": types.Fear, "suspense": types.Fear, "pressure": types.Fear,
		"obstacle": types.Fear, "challenge": types.Fear,

		// == Guilt ==
		"shame": types.Guilt, "regret": types.Guilt, "embarrassed": types.Guilt,
		"miscalculation": types.Guilt,

		// == Neutral/Other ==
		"neutral": types.NeutralOther, "surprise": types.NeutralOther, "acceptance": types.NeutralOther,
		"anticipation": types.NeutralOther, "calmness": types.NeutralOther, "confusion": types.NeutralOther,
		"curiosity": types.NeutralOther, "indifference": types.NeutralOther, "numbness": types.NeutralOther,
		"nostalgia": types.NeutralOther, "ambivalence": types.NeutralOther, "determination": types.NeutralOther,
		"contemplation": types.NeutralOther, "reflection": types.NeutralOther, "mindfulness": types.NeutralOther,
		"pensive": types.NeutralOther, "innerjourney": types.NeutralOther, "immersion": types.NeutralOther,
		"emotion": types.NeutralOther, "journey": types.NeutralOther, "renewed effort": types.NeutralOther,
		"whispers of the past": types.NeutralOther, "intrigue": types.NeutralOther,
	}
}
