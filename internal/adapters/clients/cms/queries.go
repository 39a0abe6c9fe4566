package cms

// GROQ queries. Parameters: $slug, $language, $limit, $categoryId. List
// queries only return published documents; single-document queries return
// whatever matches and leave status checks to the caller.
const (
	pageQuery = `
  *[_type == "page" && slug.current == $slug && language == $language][0] {
    _id,
    title,
    slug,
    language,
    content,
    seo,
    publishedAt,
    status
  }
`

	allPagesQuery = `
  *[_type == "page" && language == $language && status == "published"] | order(publishedAt desc) {
    _id,
    title,
    slug,
    language,
    publishedAt
  }
`

	postQuery = `
  *[_type == "post" && slug.current == $slug && language == $language][0] {
    _id,
    title,
    slug,
    language,
    excerpt,
    mainImage,
    author,
    publishedAt,
    content,
    categories[]->{
      name,
      slug
    },
    seo,
    status
  }
`

	allPostsQuery = `
  *[_type == "post" && language == $language && status == "published"] | order(publishedAt desc) {
    _id,
    title,
    slug,
    language,
    excerpt,
    mainImage,
    author,
    publishedAt,
    categories[]->{
      name,
      slug
    }
  }
`

	recentPostsQuery = `
  *[_type == "post" && language == $language && status == "published"] | order(publishedAt desc)[0...$limit] {
    _id,
    title,
    slug,
    language,
    excerpt,
    mainImage,
    author,
    publishedAt
  }
`

	productQuery = `
  *[_type == "product" && slug.current == $slug && language == $language][0] {
    _id,
    name,
    slug,
    language,
    description,
    images,
    price,
    category->{
      name,
      slug
    },
    specifications,
    features,
    content,
    seo,
    status
  }
`

	allProductsQuery = `
  *[_type == "product" && language == $language && status == "published"] | order(_createdAt desc) {
    _id,
    name,
    slug,
    language,
    description,
    images,
    price,
    category->{
      name,
      slug
    }
  }
`

	productsByCategoryQuery = `
  *[_type == "product" && language == $language && status == "published" && category._ref == $categoryId] | order(_createdAt desc) {
    _id,
    name,
    slug,
    language,
    description,
    images,
    price,
    category->{
      name,
      slug
    }
  }
`

	heroBannersQuery = `
  *[_type == "heroBanner" && language == $language && isActive == true] | order(order asc) {
    _id,
    title,
    subtitle,
    backgroundImage,
    ctaText,
    ctaLink,
    order
  }
`

	categoriesQuery = `
  *[_type == "category" && language == $language] | order(name asc) {
    _id,
    name,
    slug,
    description,
    image
  }
`

	siteSettingsQuery = `
  *[_type == "siteSettings" && language == $language][0] {
    siteName,
    siteDescription,
    logo,
    contactEmail,
    contactPhone,
    address,
    socialMedia,
    categorySection,
    seo
  }
`
)
